package command

import (
	"errors"
	"testing"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteProduct_Execute(t *testing.T) {
	cases := []struct {
		name       string
		deleteErr  error
		vectorErr  error
		wantVector bool
		wantErrIs  error
		wantErr    bool
	}{
		{name: "deletes_row_and_vector", wantVector: true},
		{name: "vector_failure_is_not_fatal", vectorErr: errors.New("index down"), wantVector: true},
		{name: "unknown_product", deleteErr: domain.ErrNotFound, wantErrIs: domain.ErrNotFound},
		{name: "store_error", deleteErr: errors.New("db down"), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleter := mocks.NewMockProductDeleter(t)
			vectors := mocks.NewMockProductVectorDeleter(t)

			deleter.EXPECT().DeleteProduct(mock.Anything, "p1").Return(tc.deleteErr)
			if tc.wantVector {
				vectors.EXPECT().DeleteProductVector(mock.Anything, "p1").Return(tc.vectorErr)
			}

			_, err := NewDeleteProduct(deleter, vectors).Execute(testContext(), DeleteProductRequest{ProductID: "p1"})

			switch {
			case tc.wantErrIs != nil:
				require.ErrorIs(t, err, tc.wantErrIs)
			case tc.wantErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}
		})
	}
}
