package orchestration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

var ErrConfigNotFound = errors.New("orchestration config not found")

// Repository reads orchestration configs, their per-phase channel settings
// and templates.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new orchestration repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// FindConfig returns the active config for a service type and target. A
// workshop-specific config wins over the global one (no workshop); the
// global config is used when the workshop has none.
func (r *Repository) FindConfig(
	ctx context.Context, serviceType string, target model.Target, workshopID *string,
) (model.OrchestrationConfig, error) {
	if workshopID != nil && *workshopID != "" {
		query := `
			SELECT oc.id, st.slug, oc.target, oc.workshop_id, oc.is_active
			FROM orchestration_configs oc
			JOIN service_types st ON st.id = oc.service_type_id
			WHERE st.slug = $1 AND oc.target = $2 AND oc.workshop_id = $3 AND oc.is_active = TRUE
			LIMIT 1;
        `

		cfg, err := scanConfig(r.db.QueryRowContext(ctx, query, serviceType, target, *workshopID))
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return model.OrchestrationConfig{}, fmt.Errorf("failed to get workshop config: %w", err)
		}
	}

	query := `
		SELECT oc.id, st.slug, oc.target, oc.workshop_id, oc.is_active
		FROM orchestration_configs oc
		JOIN service_types st ON st.id = oc.service_type_id
		WHERE st.slug = $1 AND oc.target = $2 AND oc.workshop_id IS NULL AND oc.is_active = TRUE
		LIMIT 1;
    `

	cfg, err := scanConfig(r.db.QueryRowContext(ctx, query, serviceType, target))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.OrchestrationConfig{}, ErrConfigNotFound
		}

		return model.OrchestrationConfig{}, fmt.Errorf("failed to get global config: %w", err)
	}

	return cfg, nil
}

// GetPhaseChannels returns the channel settings of one phase of a config,
// with the template of each channel when one is linked.
func (r *Repository) GetPhaseChannels(ctx context.Context, configID uuid.UUID, phase string) ([]model.PhaseChannelConfig, error) {
	query := `
		SELECT pc.id, pc.config_id, sp.slug, pc.channel, pc.enabled,
		       t.id, t.name, t.subject, t.body, t.channel, t.target
		FROM phase_channel_configs pc
		JOIN service_phases sp ON sp.id = pc.phase_id
		LEFT JOIN notification_templates t ON t.id = pc.template_id
		WHERE pc.config_id = $1 AND sp.slug = $2
		ORDER BY pc.channel;
    `

	rows, err := r.db.QueryContext(ctx, query, configID, phase)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase channels: %w", err)
	}
	defer rows.Close()

	var configs []model.PhaseChannelConfig
	for rows.Next() {
		var (
			pc                           model.PhaseChannelConfig
			channel                      string
			tplID                        uuid.NullUUID
			tplName, tplSubject, tplBody sql.NullString
			tplChannel, tplTarget        sql.NullString
		)

		err := rows.Scan(
			&pc.ID, &pc.ConfigID, &pc.Phase, &channel, &pc.Enabled,
			&tplID, &tplName, &tplSubject, &tplBody, &tplChannel, &tplTarget,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan phase channel: %w", err)
		}

		pc.Channel = model.Channel(channel)
		if tplID.Valid {
			pc.Template = &model.Template{
				ID:      tplID.UUID,
				Name:    tplName.String,
				Subject: tplSubject.String,
				Body:    tplBody.String,
				Channel: model.Channel(tplChannel.String),
				Target:  model.Target(tplTarget.String),
			}
		}

		configs = append(configs, pc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate phase channels: %w", err)
	}

	return configs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfig(row rowScanner) (model.OrchestrationConfig, error) {
	var (
		cfg        model.OrchestrationConfig
		target     string
		workshopID sql.NullString
	)

	if err := row.Scan(&cfg.ID, &cfg.ServiceType, &target, &workshopID, &cfg.IsActive); err != nil {
		return model.OrchestrationConfig{}, err
	}

	cfg.Target = model.Target(target)
	if workshopID.Valid {
		cfg.WorkshopID = &workshopID.String
	}

	return cfg, nil
}
