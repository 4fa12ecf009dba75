package policy

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/policy/models"
)

// Service сервис политики организации
// Политика хранится как именованные настройки и собирается в domain.OrganizationPolicy
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса политики
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetPolicy получает типизированную политику организации
// Отсутствующие настройки заменяются значениями по умолчанию
func (s *Service) GetPolicy(ctx context.Context, organizationID int64) (*domain.OrganizationPolicy, error) {
	if organizationID <= 0 {
		return nil, fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}

	settings, err := s.settingsRepo.GetSettings(ctx, organizationID)
	if err != nil {
		s.logger.Error("GetPolicy: failed to get settings for organization=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	policy, err := domain.PolicyFromSettings(organizationID, settings)
	if err != nil {
		s.logger.Error("GetPolicy: invalid stored settings for organization=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: organization=%d: %v", ErrCorruptedSettings, organizationID, err)
	}

	return &policy, nil
}

// GetPolicyResponse получает политику организации в формате ответа API
func (s *Service) GetPolicyResponse(ctx context.Context, organizationID int64) (*models.PolicyResponse, error) {
	s.logger.Info("GetPolicyResponse: fetching policy for organization=%d", organizationID)

	policy, err := s.GetPolicy(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainPolicy(*policy), nil
}

// UpdateSettings проверяет и сохраняет настройки организации
// Неизвестный ключ или некорректное значение отклоняют весь запрос
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.PolicyResponse, error) {
	s.logger.Info("UpdateSettings: organization=%d, keys=%s", req.OrganizationID, settingKeys(req.Settings))

	if req.OrganizationID <= 0 {
		return nil, fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}
	if len(req.Settings) == 0 {
		return nil, fmt.Errorf("%w: settings are empty", ErrInvalidInput)
	}

	normalized := make(map[string]string, len(req.Settings))
	for key, value := range req.Settings {
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if err := domain.ValidateSetting(key, value); err != nil {
			s.logger.Warn("UpdateSettings: rejected %s=%q for organization=%d: %v", key, value, req.OrganizationID, err)
			return nil, err
		}

		// Список филиалов хранится в каноническом виде
		if key == domain.SettingTimeWindowExcludedBranches {
			ids, _ := domain.ParseBranchList(value)
			value = domain.FormatBranchList(ids)
		}

		normalized[key] = value
	}

	if err := s.settingsRepo.UpsertSettings(ctx, req.OrganizationID, normalized); err != nil {
		s.logger.Error("UpdateSettings: failed to save settings for organization=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	s.logger.Info("UpdateSettings: saved %d settings for organization=%d", len(normalized), req.OrganizationID)

	return s.GetPolicyResponse(ctx, req.OrganizationID)
}

func settingKeys(settings map[string]string) string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
