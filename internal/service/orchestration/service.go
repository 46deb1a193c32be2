package orchestration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/config"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/render"
	customerrepo "github.com/Djtv1304/ambacar-backend-notifications/internal/repository/customer"
	orchrepo "github.com/Djtv1304/ambacar-backend-notifications/internal/repository/orchestration"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/resolver"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/service/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/orchestration/mock.go -package=mocks

type configRepository interface {
	FindConfig(ctx context.Context, serviceType string, target model.Target, workshopID *string) (model.OrchestrationConfig, error)
	GetPhaseChannels(ctx context.Context, configID uuid.UUID, phase string) ([]model.PhaseChannelConfig, error)
}

type customerRepository interface {
	GetContact(ctx context.Context, customerID string) (model.Contact, error)
	GetPreferences(ctx context.Context, customerID string) ([]model.ChannelPreference, error)
	EnsureContact(ctx context.Context, c model.Contact) error
}

type dispatcher interface {
	Queue(ctx context.Context, req notification.QueueRequest) (model.Notification, error)
}

// NameKey is the context key the customer's display name is injected under.
const NameKey = "nombre"

// nameKeys are the normalized context keys that already carry a name.
var nameKeys = []string{"nombre", "name", "nombre_cliente", "cliente", "customer_name", "nombre_completo"}

// customChannels are the only channels a custom event is sent on. Push has
// no generic title and body contract for arbitrary messages.
var customChannels = []model.Channel{model.ChannelEmail, model.ChannelWhatsApp}

// Service turns business events into queued notifications.
type Service struct {
	configs             configRepository
	customers           customerRepository
	dispatcher          dispatcher
	autoCreateCustomers bool
}

func NewService(
	configs configRepository,
	customers customerRepository,
	dispatcher dispatcher,
	cfg config.Orchestration,
) *Service {
	return &Service{
		configs:             configs,
		customers:           customers,
		dispatcher:          dispatcher,
		autoCreateCustomers: cfg.AutoCreateCustomers,
	}
}

// ProcessEvent resolves the channels, templates and recipient of an event,
// renders the content and queues one notification per resolved channel.
//
// Config, recipient and template variable problems abort the event before
// anything is queued and are returned as errors alongside a failed result.
// Queueing errors of single channels are collected in the result without
// stopping the remaining channels. An event with no eligible channel is a
// success with zero notifications queued.
func (s *Service) ProcessEvent(ctx context.Context, p model.EventPayload) (model.OrchestrationResult, error) {
	correlationID, err := correlationOf(p)
	if err != nil {
		return failed("", err), err
	}

	result := model.OrchestrationResult{CorrelationID: correlationID.String(), Errors: []string{}}

	if err := validate(&p); err != nil {
		return failed(result.CorrelationID, err), err
	}

	log := zlog.Logger.With().
		Str("correlation_id", result.CorrelationID).
		Str("event_type", string(p.EventType)).
		Str("customer_id", p.CustomerID).
		Logger()

	candidates, err := s.candidates(ctx, p)
	if err != nil {
		return failed(result.CorrelationID, err), err
	}
	if len(candidates) == 0 {
		log.Info().Msg("no channels configured for event")
		result.Success = true
		return result, nil
	}

	contact, err := s.contact(ctx, p)
	if err != nil {
		return failed(result.CorrelationID, err), err
	}

	vars := enrich(p.Context, contact)

	if p.EventType != model.EventCustom {
		if missing := missingVariables(candidates, vars); len(missing) > 0 {
			err := &model.MissingTemplateVariablesError{Names: missing}
			return failed(result.CorrelationID, err), err
		}
	}

	prefs, err := s.customers.GetPreferences(ctx, p.CustomerID)
	if err != nil {
		err = fmt.Errorf("get preferences: %w", err)
		return failed(result.CorrelationID, err), err
	}

	targets := resolver.Resolve(candidates, prefs, contact)
	if len(targets) == 0 {
		log.Info().Msg("no eligible channel for customer")
		result.Success = true
		return result, nil
	}

	order := resolver.PriorityOrder(targets)

	for _, t := range targets {
		tpl := t.Config.Template

		req := notification.QueueRequest{
			EventType:     p.EventType,
			Channel:       t.Channel(),
			RecipientID:   p.CustomerID,
			Recipient:     t.Recipient,
			TemplateName:  tpl.Name,
			Subject:       render.Render(tpl.Subject, vars),
			Body:          render.Render(tpl.Body, vars),
			Variables:     vars,
			PriorityOrder: order,
			CorrelationID: correlationID,
		}
		if tpl.ID != uuid.Nil {
			id := tpl.ID
			req.TemplateID = &id
		}

		n, err := s.dispatcher.Queue(ctx, req)
		if err != nil {
			log.Error().Err(err).Str("channel", t.Channel().String()).Msg("failed to queue notification")
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", t.Channel(), err))
			continue
		}

		log.Info().Str("id", n.ID.String()).Str("channel", t.Channel().String()).Msg("notification queued")
		result.NotificationsQueued++
	}

	result.Success = len(result.Errors) == 0

	return result, nil
}

// candidates returns the sendable channel configs of the event.
func (s *Service) candidates(ctx context.Context, p model.EventPayload) ([]model.PhaseChannelConfig, error) {
	if p.EventType == model.EventCustom {
		return customCandidates(p.Context), nil
	}

	cfg, err := s.configs.FindConfig(ctx, p.ServiceTypeID, p.Target, p.WorkshopID)
	if err != nil {
		if errors.Is(err, orchrepo.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: service type %q, target %q", model.ErrConfigNotFound, p.ServiceTypeID, p.Target)
		}

		return nil, fmt.Errorf("find config: %w", err)
	}

	phases, err := s.configs.GetPhaseChannels(ctx, cfg.ID, p.PhaseID)
	if err != nil {
		return nil, fmt.Errorf("get phase channels: %w", err)
	}

	var sendable []model.PhaseChannelConfig
	for _, pc := range phases {
		if pc.Sendable() {
			sendable = append(sendable, pc)
		}
	}

	return sendable, nil
}

func customCandidates(ctx map[string]string) []model.PhaseChannelConfig {
	index := render.Index(ctx)

	tpl := &model.Template{
		Name:    string(model.EventCustom),
		Subject: index[render.Normalize(model.CustomSubjectKey)],
		Body:    index[render.Normalize(model.CustomBodyKey)],
	}

	configs := make([]model.PhaseChannelConfig, 0, len(customChannels))
	for _, ch := range customChannels {
		configs = append(configs, model.PhaseChannelConfig{Channel: ch, Enabled: true, Template: tpl})
	}

	return configs
}

// contact loads the customer's contact, synthesizing a minimal one from the
// event context when auto-creation is enabled and the context names the
// customer.
func (s *Service) contact(ctx context.Context, p model.EventPayload) (model.Contact, error) {
	c, err := s.customers.GetContact(ctx, p.CustomerID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, customerrepo.ErrCustomerNotFound) {
		return model.Contact{}, fmt.Errorf("get contact: %w", err)
	}

	notFound := fmt.Errorf("%w: %s", model.ErrRecipientNotFound, p.CustomerID)
	if !s.autoCreateCustomers {
		return model.Contact{}, notFound
	}

	c, ok := contactFromContext(p.CustomerID, p.Context)
	if !ok {
		return model.Contact{}, notFound
	}

	if err := s.customers.EnsureContact(ctx, c); err != nil {
		return model.Contact{}, fmt.Errorf("create contact: %w", err)
	}

	zlog.Logger.Info().Str("customer_id", p.CustomerID).Msg("created contact from event context")

	return c, nil
}

func contactFromContext(customerID string, ctx map[string]string) (model.Contact, bool) {
	index := render.Index(ctx)

	name := firstOf(index, nameKeys...)
	if name == "" {
		return model.Contact{}, false
	}

	first, last, _ := strings.Cut(name, " ")

	return model.Contact{
		CustomerID: customerID,
		FirstName:  first,
		LastName:   strings.TrimSpace(last),
		Email:      firstOf(index, "email", "correo"),
		Phone:      firstOf(index, "telefono", "phone", "celular"),
		WhatsApp:   firstOf(index, "whatsapp"),
	}, true
}

// enrich copies the event context and adds the customer's name under
// NameKey when no name-like key is present. Caller values are never
// overwritten.
func enrich(ctx map[string]string, c model.Contact) map[string]string {
	vars := make(map[string]string, len(ctx)+1)
	for k, v := range ctx {
		vars[k] = v
	}

	for _, k := range nameKeys {
		if render.HasKey(vars, k) {
			return vars
		}
	}

	if name := c.FullName(); name != "" {
		vars[NameKey] = name
	}

	return vars
}

// missingVariables lists the variables used by any candidate template that
// the context lacks.
func missingVariables(candidates []model.PhaseChannelConfig, vars map[string]string) []string {
	var used []string
	for _, c := range candidates {
		used = append(used, render.ExtractVariables(c.Template.Subject)...)
		used = append(used, render.ExtractVariables(c.Template.Body)...)
	}

	return render.MissingVariables(used, vars)
}

func validate(p *model.EventPayload) error {
	if !p.EventType.IsValid() {
		return &model.InvalidEventPayloadError{Reason: fmt.Sprintf("unknown event type %q", p.EventType)}
	}
	if strings.TrimSpace(p.CustomerID) == "" {
		return &model.InvalidEventPayloadError{Reason: "customer_id is required"}
	}

	if p.Target == "" {
		p.Target = model.TargetClients
	}
	if p.Target != model.TargetClients && p.Target != model.TargetStaff {
		return &model.InvalidEventPayloadError{Reason: fmt.Sprintf("unknown target %q", p.Target)}
	}

	if p.EventType == model.EventCustom {
		index := render.Index(p.Context)
		if firstOf(index, model.CustomSubjectKey) == "" {
			return &model.InvalidEventPayloadError{Reason: "custom events require a subject in the context"}
		}
		if firstOf(index, model.CustomBodyKey) == "" {
			return &model.InvalidEventPayloadError{Reason: "custom events require a body in the context"}
		}
		return nil
	}

	if p.ServiceTypeID == "" || p.PhaseID == "" {
		return &model.InvalidEventPayloadError{Reason: "service_type_id and phase_id are required"}
	}

	return nil
}

func correlationOf(p model.EventPayload) (uuid.UUID, error) {
	if p.CorrelationID == nil || *p.CorrelationID == "" {
		return uuid.New(), nil
	}

	id, err := uuid.Parse(*p.CorrelationID)
	if err != nil {
		return uuid.Nil, &model.InvalidEventPayloadError{Reason: "correlation_id is not a valid UUID"}
	}

	return id, nil
}

func failed(correlationID string, err error) model.OrchestrationResult {
	return model.OrchestrationResult{
		CorrelationID: correlationID,
		Errors:        []string{err.Error()},
	}
}

func firstOf(index map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(index[render.Normalize(k)]); v != "" {
			return v
		}
	}

	return ""
}
