package invoicing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/freightdesk/internal/invoicing"
	"github.com/MrJamesThe3rd/freightdesk/internal/load"
)

func TestVerifier_Verify(t *testing.T) {
	tenantID := uuid.New()
	loadID := uuid.New()

	type testCase struct {
		name    string
		status  load.FinancialStatus
		readErr error
		wantErr bool
	}

	tests := []testCase{
		{name: "Invoiced", status: load.FinancialStatusInvoiced},
		{name: "StaleRead", status: load.FinancialStatusAudited, wantErr: true},
		{name: "ReadFails", readErr: errors.New("replica unavailable"), wantErr: true},
		{name: "LoadVanished", readErr: load.ErrNotFound, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loads := invoicing.NewMockLoadStore(ctrl)
			loads.EXPECT().GetFinancialStatus(gomock.Any(), tenantID, loadID).Return(tt.status, tt.readErr)

			err := invoicing.NewVerifier(loads).Verify(context.Background(), tenantID, loadID)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, invoicing.ErrVerificationMismatch)

			if tt.readErr != nil {
				assert.ErrorIs(t, err, tt.readErr)
			}
		})
	}
}
