package orchestration

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

var configColumns = []string{"id", "slug", "target", "workshop_id", "is_active"}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestFindConfig_WorkshopSpecific(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	workshop := "taller-norte"

	mock.ExpectQuery(regexp.QuoteMeta(`oc.workshop_id = $3`)).
		WithArgs("mantenimiento", model.TargetClients, workshop).
		WillReturnRows(sqlmock.NewRows(configColumns).AddRow(id.String(), "mantenimiento", "clients", workshop, true))

	cfg, err := repo.FindConfig(context.Background(), "mantenimiento", model.TargetClients, &workshop)
	require.NoError(t, err)

	assert.Equal(t, id, cfg.ID)
	require.NotNil(t, cfg.WorkshopID)
	assert.Equal(t, workshop, *cfg.WorkshopID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindConfig_FallsBackToGlobal(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	workshop := "taller-sur"

	mock.ExpectQuery(regexp.QuoteMeta(`oc.workshop_id = $3`)).
		WithArgs("mantenimiento", model.TargetClients, workshop).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`oc.workshop_id IS NULL`)).
		WithArgs("mantenimiento", model.TargetClients).
		WillReturnRows(sqlmock.NewRows(configColumns).AddRow(id.String(), "mantenimiento", "clients", nil, true))

	cfg, err := repo.FindConfig(context.Background(), "mantenimiento", model.TargetClients, &workshop)
	require.NoError(t, err)

	assert.Equal(t, id, cfg.ID)
	assert.Nil(t, cfg.WorkshopID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindConfig_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`oc.workshop_id IS NULL`)).
		WithArgs("pintura", model.TargetStaff).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindConfig(context.Background(), "pintura", model.TargetStaff, nil)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestGetPhaseChannels(t *testing.T) {
	repo, mock := setupMockDB(t)

	configID := uuid.New()
	tplID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM phase_channel_configs pc`)).
		WithArgs(configID, "recepcion").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "config_id", "slug", "channel", "enabled",
			"t.id", "name", "subject", "body", "t.channel", "t.target",
		}).
			AddRow(uuid.New().String(), configID.String(), "recepcion", "email", true,
				tplID.String(), "recepcion-email", "Vehículo recibido", "Hola {{nombre}}", "email", "clients").
			AddRow(uuid.New().String(), configID.String(), "recepcion", "push", true,
				nil, nil, nil, nil, nil, nil))

	configs, err := repo.GetPhaseChannels(context.Background(), configID, "recepcion")
	require.NoError(t, err)
	require.Len(t, configs, 2)

	assert.True(t, configs[0].Sendable())
	assert.Equal(t, tplID, configs[0].Template.ID)
	assert.Equal(t, "Hola {{nombre}}", configs[0].Template.Body)

	assert.Equal(t, model.ChannelPush, configs[1].Channel)
	assert.False(t, configs[1].Sendable())

	assert.NoError(t, mock.ExpectationsWereMet())
}
