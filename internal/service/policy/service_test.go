package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/policy/models"
	"github.com/m04kA/SMC-FleetBookingService/pkg/logger"
)

type mockSettingsRepository struct {
	getSettingsFunc    func(ctx context.Context, organizationID int64) (map[string]string, error)
	upsertSettingsFunc func(ctx context.Context, organizationID int64, settings map[string]string) error
}

func (m *mockSettingsRepository) GetSettings(ctx context.Context, organizationID int64) (map[string]string, error) {
	if m.getSettingsFunc != nil {
		return m.getSettingsFunc(ctx, organizationID)
	}
	return map[string]string{}, nil
}

func (m *mockSettingsRepository) UpsertSettings(ctx context.Context, organizationID int64, settings map[string]string) error {
	if m.upsertSettingsFunc != nil {
		return m.upsertSettingsFunc(ctx, organizationID, settings)
	}
	return nil
}

func TestService_GetPolicy(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]string
		repoErr  error
		wantErr  error
		check    func(t *testing.T, p *domain.OrganizationPolicy)
	}{
		{
			name:     "defaults when nothing is stored",
			settings: map[string]string{},
			check: func(t *testing.T, p *domain.OrganizationPolicy) {
				assert.Equal(t, domain.DefaultPolicy(1), *p)
			},
		},
		{
			name: "stored settings applied",
			settings: map[string]string{
				domain.SettingAdvanceBookingMonths:       "3",
				domain.SettingTimeWindowExcludedBranches: "4, 2",
			},
			check: func(t *testing.T, p *domain.OrganizationPolicy) {
				assert.Equal(t, 3, p.MaxAdvanceMonths)
				assert.False(t, p.IsTimeRestricted(2))
				assert.True(t, p.IsTimeRestricted(3))
			},
		},
		{
			name:    "store failure is a transport error",
			repoErr: errors.New("connection refused"),
			wantErr: domain.ErrTransport,
		},
		{
			name:     "corrupted settings",
			settings: map[string]string{domain.SettingExcludeWeekends: "maybe"},
			wantErr:  ErrCorruptedSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSettingsRepository{
				getSettingsFunc: func(ctx context.Context, organizationID int64) (map[string]string, error) {
					return tt.settings, tt.repoErr
				},
			}
			svc := NewService(repo, logger.NewNop())

			p, err := svc.GetPolicy(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestService_UpdateSettings(t *testing.T) {
	t.Run("normalizes branch list before saving", func(t *testing.T) {
		var saved map[string]string
		stored := map[string]string{}
		repo := &mockSettingsRepository{
			upsertSettingsFunc: func(ctx context.Context, organizationID int64, settings map[string]string) error {
				saved = settings
				for k, v := range settings {
					stored[k] = v
				}
				return nil
			},
			getSettingsFunc: func(ctx context.Context, organizationID int64) (map[string]string, error) {
				return stored, nil
			},
		}
		svc := NewService(repo, logger.NewNop())

		resp, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
			OrganizationID: 1,
			Settings: map[string]string{
				domain.SettingTimeWindowExcludedBranches: " 9, ,3,9 ",
				domain.SettingManualExtensionAllowed:     "true",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "3,9", saved[domain.SettingTimeWindowExcludedBranches])
		assert.Equal(t, []int64{3, 9}, resp.TimeWindowExcludedBranches)
		assert.Equal(t, "excluded_branches", resp.TimeWindowScope)
		assert.True(t, resp.ManualExtensionAllowed)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		repo := &mockSettingsRepository{
			upsertSettingsFunc: func(ctx context.Context, organizationID int64, settings map[string]string) error {
				t.Fatal("must not save")
				return nil
			},
		}
		svc := NewService(repo, logger.NewNop())

		_, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
			OrganizationID: 1,
			Settings:       map[string]string{"slot_duration": "30"},
		})
		assert.ErrorIs(t, err, domain.ErrUnknownPolicySetting)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		svc := NewService(&mockSettingsRepository{}, logger.NewNop())

		_, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
			OrganizationID: 1,
			Settings:       map[string]string{domain.SettingOdometerTolerance: "-0.2"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPolicySetting)
	})

	t.Run("empty settings", func(t *testing.T) {
		svc := NewService(&mockSettingsRepository{}, logger.NewNop())

		_, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{OrganizationID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
