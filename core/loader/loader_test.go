package loader

import (
	"context"
	"io"
	"strings"
	"testing"

	"data-integrity/core/storage"
	"data-integrity/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	t.Run("header and typed-as-string cells", func(t *testing.T) {
		f, err := ReadCSV(strings.NewReader("id,amount\n1,10.5\n2,20\n"))
		require.NoError(t, err)

		assert.Equal(t, []string{"id", "amount"}, f.Columns())
		assert.Equal(t, 2, f.NumRows())
		assert.Equal(t, []any{"1", "10.5"}, f.Row(0))
	})

	t.Run("empty cells are missing", func(t *testing.T) {
		f, err := ReadCSV(strings.NewReader("a,b\nx,\n,y\n"))
		require.NoError(t, err)

		b, err := f.Values("b")
		require.NoError(t, err)
		assert.Nil(t, b[0])
		assert.Equal(t, "y", b[1])
	})

	t.Run("empty input yields empty frame", func(t *testing.T) {
		f, err := ReadCSV(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, f.NumRows())
		assert.Equal(t, 0, f.NumCols())
	})
}

func TestFetchObject(t *testing.T) {
	t.Run("existing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "datasets").Return(true, nil)
		client.On("GetObject", mock.Anything, "datasets", "sales.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader("id\n1\n")), nil)

		f, err := FetchObject(context.Background(), client, "datasets", "sales.csv")
		require.NoError(t, err)
		assert.Equal(t, 1, f.NumRows())
		client.AssertExpectations(t)
	})

	t.Run("missing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "datasets").Return(false, nil)

		_, err := FetchObject(context.Background(), client, "datasets", "sales.csv")
		assert.ErrorContains(t, err, "does not exist")
		client.AssertExpectations(t)
	})
}

func TestSplitObjectRef(t *testing.T) {
	bucket, object, err := splitObjectRef("s3://datasets/2024/sales.csv")
	require.NoError(t, err)
	assert.Equal(t, "datasets", bucket)
	assert.Equal(t, "2024/sales.csv", object)

	t.Run("bare object reference has no bucket", func(t *testing.T) {
		bucket, object, err := splitObjectRef("s3://sales.csv")
		require.NoError(t, err)
		assert.Equal(t, "", bucket)
		assert.Equal(t, "sales.csv", object)
	})

	for _, bad := range []string{"s3://", "s3:///object", "s3://bucket/"} {
		_, _, err := splitObjectRef(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadDefaultBucket(t *testing.T) {
	t.Run("bare object uses the configured bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "datasets").Return(true, nil)
		client.On("GetObject", mock.Anything, "datasets", "sales.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader("id\n1\n")), nil)

		src := Sources{
			Storage: func() (storage.Client, error) { return client, nil },
			Bucket:  "datasets",
		}
		f, err := Load(context.Background(), src, "s3://sales.csv")
		require.NoError(t, err)
		assert.Equal(t, 1, f.NumRows())
		client.AssertExpectations(t)
	})

	t.Run("no default bucket configured", func(t *testing.T) {
		src := Sources{
			Storage: func() (storage.Client, error) { return new(mocks.Client), nil },
		}
		_, err := Load(context.Background(), src, "s3://sales.csv")
		assert.ErrorContains(t, err, "no default bucket")
	})
}

func TestLoadUnconfiguredSources(t *testing.T) {
	_, err := Load(context.Background(), Sources{}, "db://payments")
	assert.Error(t, err)

	_, err = Load(context.Background(), Sources{}, "s3://bucket/object.csv")
	assert.Error(t, err)
}
