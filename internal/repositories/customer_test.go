package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateCustomerError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "duplicated key becomes email taken",
			err:  gorm.ErrDuplicatedKey,
			want: ErrEmailTaken,
		},
		{
			name: "wrapped duplicated key becomes email taken",
			err:  fmt.Errorf("create customer: %w", gorm.ErrDuplicatedKey),
			want: ErrEmailTaken,
		},
		{
			name: "other errors pass through",
			err:  gorm.ErrInvalidTransaction,
			want: gorm.ErrInvalidTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(translateCustomerError(tt.err), tt.want))
		})
	}
}
