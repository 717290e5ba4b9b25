package utils

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEncodeMatrixCSV(t *testing.T) {
	X := mat.NewDense(2, 3, []float64{1, 2.5, math.NaN(), -4, 1e-7, 6})

	data, err := EncodeMatrixCSV(X)
	require.NoError(t, err)
	assert.Equal(t, "1,2.5,\n-4,1e-07,6\n", string(data))
}

func TestEncodeVectorCSV(t *testing.T) {
	data, err := EncodeVectorCSV(mat.NewVecDense(3, []float64{0, 1, 1}))
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n1\n", string(data))
}

func TestReadDatasetCSV_WithHeader(t *testing.T) {
	input := "a,b,target\n1,2,0\n3,,1\n"

	X, y, err := ReadDatasetCSV(strings.NewReader(input))
	require.NoError(t, err)

	r, c := X.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, X.At(1, 0))
	assert.True(t, math.IsNaN(X.At(1, 1)))
	assert.Equal(t, []float64{0, 1}, y.RawVector().Data)
}

func TestReadDatasetCSV_NoHeader(t *testing.T) {
	X, y, err := ReadDatasetCSV(strings.NewReader("1,2,3\n4,5,6\n"))
	require.NoError(t, err)

	r, _ := X.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 6.0, y.AtVec(1))
}

func TestReadDatasetCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrEmptyDataset},
		{name: "header only", input: "a,b\n", wantErr: ErrEmptyDataset},
		{name: "single column", input: "1\n2\n", wantErr: ErrNotEnoughColumn},
		{name: "ragged", input: "1,2\n3,4,5\n", wantErr: ErrRaggedDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadDatasetCSV(strings.NewReader(tt.input))
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestReadDatasetCSV_NonNumericBody(t *testing.T) {
	_, _, err := ReadDatasetCSV(strings.NewReader("1,2\nx,4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2 column 1")
}

func TestReadFeaturesCSV_RoundTrip(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{0.1, 0.2, 0.3, 0.4})
	data, err := EncodeMatrixCSV(X)
	require.NoError(t, err)

	got, err := ReadFeaturesCSV(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.True(t, mat.Equal(X, got))
}
