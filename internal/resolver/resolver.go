// Package resolver decides which channels an event is delivered on, in what
// order, and at which address.
package resolver

import (
	"sort"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

// Target is one channel chosen for delivery.
type Target struct {
	Config    model.PhaseChannelConfig
	Recipient string
}

// Channel returns the channel of the target.
func (t Target) Channel() model.Channel {
	return t.Config.Channel
}

// Resolve orders the sendable phase configs by the customer's preferences.
//
// Channels the customer enabled come first, by ascending priority. Channels
// without a preference follow in config order. Channels the customer
// disabled and channels with no address for the contact are dropped. Each
// channel appears at most once.
func Resolve(configs []model.PhaseChannelConfig, prefs []model.ChannelPreference, contact model.Contact) []Target {
	byChannel := make(map[model.Channel]model.PhaseChannelConfig, len(configs))
	for _, c := range configs {
		if !c.Sendable() || !c.Channel.IsValid() {
			continue
		}
		if _, ok := byChannel[c.Channel]; !ok {
			byChannel[c.Channel] = c
		}
	}

	ordered := make([]model.ChannelPreference, len(prefs))
	copy(ordered, prefs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	disabled := make(map[model.Channel]bool)
	for _, p := range ordered {
		if !p.Enabled {
			disabled[p.Channel] = true
		}
	}

	var targets []Target
	used := make(map[model.Channel]bool)

	add := func(ch model.Channel) {
		cfg, ok := byChannel[ch]
		if !ok || used[ch] || disabled[ch] {
			return
		}

		addr := contact.RecipientFor(ch)
		if addr == "" {
			return
		}

		used[ch] = true
		targets = append(targets, Target{Config: cfg, Recipient: addr})
	}

	for _, p := range ordered {
		if p.Enabled {
			add(p.Channel)
		}
	}

	for _, c := range configs {
		add(c.Channel)
	}

	return targets
}

// PriorityOrder lists the channels of targets in delivery order.
func PriorityOrder(targets []Target) []model.Channel {
	order := make([]model.Channel, 0, len(targets))
	for _, t := range targets {
		order = append(order, t.Channel())
	}

	return order
}
