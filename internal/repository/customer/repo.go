package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/channel"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Repository provides access to customer contacts, channel preferences and
// push subscriptions.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new customer repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetContact returns the contact record of a customer.
func (r *Repository) GetContact(ctx context.Context, customerID string) (model.Contact, error) {
	query := `
		SELECT customer_id, first_name, last_name, email, phone, whatsapp
		FROM customer_contacts
		WHERE customer_id = $1;
    `

	var (
		c                      model.Contact
		email, phone, whatsapp sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, customerID).Scan(
		&c.CustomerID, &c.FirstName, &c.LastName, &email, &phone, &whatsapp,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Contact{}, ErrCustomerNotFound
		}

		return model.Contact{}, fmt.Errorf("failed to get contact: %w", err)
	}

	c.Email = email.String
	c.Phone = phone.String
	c.WhatsApp = whatsapp.String

	return c, nil
}

// EnsureContact inserts a minimal contact unless one already exists.
func (r *Repository) EnsureContact(ctx context.Context, c model.Contact) error {
	query := `
		INSERT INTO customer_contacts (customer_id, first_name, last_name, email, phone, whatsapp)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (customer_id) DO NOTHING;
    `

	_, err := r.db.ExecContext(
		ctx, query, c.CustomerID, c.FirstName, c.LastName,
		nullString(c.Email), nullString(c.Phone), nullString(c.WhatsApp),
	)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

// GetPreferences returns every channel preference of a customer, enabled or
// not, highest priority first.
func (r *Repository) GetPreferences(ctx context.Context, customerID string) ([]model.ChannelPreference, error) {
	query := `
		SELECT channel, enabled, priority
		FROM customer_channel_preferences
		WHERE customer_id = $1
		ORDER BY priority;
    `

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	defer rows.Close()

	var prefs []model.ChannelPreference
	for rows.Next() {
		var (
			p  model.ChannelPreference
			ch string
		)
		if err := rows.Scan(&ch, &p.Enabled, &p.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}

		p.Channel = model.Channel(ch)
		prefs = append(prefs, p)
	}

	return prefs, rows.Err()
}

// ActivePushSubscription returns the most recently used active subscription.
func (r *Repository) ActivePushSubscription(ctx context.Context, customerID string) (model.PushSubscription, error) {
	query := `
		SELECT customer_id, endpoint, p256dh_key, auth_key, is_active, failure_count, last_used_at
		FROM push_subscriptions
		WHERE customer_id = $1 AND is_active = TRUE
		ORDER BY last_used_at DESC NULLS LAST, created_at DESC
		LIMIT 1;
    `

	var (
		sub        model.PushSubscription
		lastUsedAt sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, query, customerID).Scan(
		&sub.CustomerID, &sub.Endpoint, &sub.P256dhKey, &sub.AuthKey, &sub.IsActive, &sub.FailureCount, &lastUsedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PushSubscription{}, channel.ErrNoActiveSubscription
		}

		return model.PushSubscription{}, fmt.Errorf("failed to get push subscription: %w", err)
	}

	if lastUsedAt.Valid {
		sub.LastUsedAt = &lastUsedAt.Time
	}

	return sub, nil
}

// DeactivatePushSubscription disables a subscription the push service reported gone.
func (r *Repository) DeactivatePushSubscription(ctx context.Context, endpoint string) error {
	query := `
		UPDATE push_subscriptions
		SET is_active = FALSE, failure_count = failure_count + 1
		WHERE endpoint = $1;
    `

	if _, err := r.db.ExecContext(ctx, query, endpoint); err != nil {
		return fmt.Errorf("failed to deactivate push subscription: %w", err)
	}

	return nil
}

// MarkPushSubscriptionUsed records a successful delivery to a subscription.
func (r *Repository) MarkPushSubscriptionUsed(ctx context.Context, endpoint string) error {
	query := `
		UPDATE push_subscriptions
		SET last_used_at = NOW(), failure_count = 0
		WHERE endpoint = $1;
    `

	if _, err := r.db.ExecContext(ctx, query, endpoint); err != nil {
		return fmt.Errorf("failed to mark push subscription used: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
