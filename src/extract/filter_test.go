package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPromotional(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty text is noise", "", true},
		{"whitespace only is noise", "   \t ", true},
		{"loan offer", "Exclusive loan offer just for you, apply now!", true},
		{"discount spam", "Flat 50% discount on your next order, limited period offer", true},
		{"app push", "Download app today and win rewards", true},
		{"plain debit", "Rs.500 debited from your A/c", false},
		{"transactional beats promotional", "Payment of Rs.999 received for insurance premium", false},
		{"txn keyword overrides offer", "Txn alert: EMI offer pre-approved, Rs.200 debited", false},
		{"neither signal passes through", "Your appointment is confirmed for Monday", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPromotional(tt.text))
		})
	}
}
