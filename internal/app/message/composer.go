package message

import (
	"time"

	"planner/internal/core/domain"
	"planner/internal/core/ports"
	"planner/pkg/clock"
	"planner/pkg/translator"
)

const (
	msgDueToday    = "dueToday"
	msgDueTomorrow = "dueTomorrow"
	msgDueInDays   = "dueInDays"
	msgDuePast     = "duePast"
)

// Composer builds the body text of a task reminder relative to today.
type Composer struct {
	clock  clock.Clock
	policy domain.DuePolicy
	lang   string
}

var _ ports.MessageComposer = (*Composer)(nil)

func NewComposer(c clock.Clock, policy domain.DuePolicy, lang string) *Composer {
	if lang == "" {
		lang = translator.LanguagePt
	}
	return &Composer{clock: c, policy: policy, lang: lang}
}

// Compose reads the clock once. A nil dueTime renders the policy default.
func (c *Composer) Compose(title string, dueDate time.Time, dueTime *clock.TimeOfDay) string {
	today := c.policy.Today(c.clock.Now())

	at := c.policy.DefaultTime
	if dueTime != nil {
		at = *dueTime
	}

	data := map[string]any{
		"Title": title,
		"Time":  at.Short(),
	}

	var messageID string
	switch days := clock.DaysBetween(today, dueDate); {
	case days == 0:
		messageID = msgDueToday
	case days == 1:
		messageID = msgDueTomorrow
	case days > 1:
		messageID = msgDueInDays
		data["Days"] = days
	default:
		messageID = msgDuePast
	}

	return translator.Localize(c.lang, messageID, data)
}
