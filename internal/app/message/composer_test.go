package message_test

import (
	"os"
	"testing"
	"time"

	"planner/internal/app/message"
	"planner/internal/core/domain"
	"planner/pkg/clock"
	"planner/pkg/translator"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguagePt, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

var policy = domain.DuePolicy{DefaultTime: clock.EndOfDay, Location: time.UTC}

func composerAt(now time.Time, lang string) *message.Composer {
	return message.NewComposer(clock.Fixed(now), policy, lang)
}

func day(value string) time.Time {
	parsed, err := clock.ParseDate(value, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func at(value string) *clock.TimeOfDay {
	tod := clock.MustParseTimeOfDay(value)
	return &tod
}

func TestCompose_Today(t *testing.T) {
	c := composerAt(time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC), translator.LanguagePt)

	msg := c.Compose("Ler apontamentos", day("2026-02-10"), at("18:00:00"))

	assert.Contains(t, msg, "hoje")
	assert.Contains(t, msg, "18:00")
	assert.Equal(t, `A tarefa "Ler apontamentos" termina hoje às 18:00`, msg)
}

func TestCompose_DayDifferences(t *testing.T) {
	c := composerAt(time.Date(2026, 2, 10, 23, 59, 0, 0, time.UTC), translator.LanguagePt)

	assert.Equal(t, `A tarefa "Mala" termina amanhã às 17:15`, c.Compose("Mala", day("2026-02-11"), at("17:15")))
	assert.Equal(t, `A tarefa "Mala" termina em 2 dias às 17:15`, c.Compose("Mala", day("2026-02-12"), at("17:15")))
	assert.Equal(t, `A tarefa "Mala" já terminou às 17:15`, c.Compose("Mala", day("2026-02-09"), at("17:15")))
}

func TestCompose_DefaultTime(t *testing.T) {
	c := composerAt(time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC), translator.LanguagePt)

	assert.Equal(t, `A tarefa "Exame" termina amanhã às 23:59`, c.Compose("Exame", day("2026-02-11"), nil))
}

func TestCompose_English(t *testing.T) {
	c := composerAt(time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC), translator.LanguageEn)

	assert.Equal(t, `Task "Report" is due today at 09:30`, c.Compose("Report", day("2026-02-10"), at("09:30")))
	assert.Equal(t, `Task "Report" is due tomorrow at 09:30`, c.Compose("Report", day("2026-02-11"), at("09:30")))
	assert.Equal(t, `Task "Report" is due in 2 days at 09:30`, c.Compose("Report", day("2026-02-12"), at("09:30")))
	assert.Equal(t, `Task "Report" already ended at 09:30`, c.Compose("Report", day("2026-02-09"), at("09:30")))
}

func TestCompose_AcrossDSTTransition(t *testing.T) {
	lisbon, err := time.LoadLocation("Europe/Lisbon")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	lisbonPolicy := domain.DuePolicy{DefaultTime: clock.EndOfDay, Location: lisbon}
	c := message.NewComposer(clock.Fixed(time.Date(2026, 3, 28, 23, 30, 0, 0, lisbon)), lisbonPolicy, translator.LanguagePt)

	due, err := clock.ParseDate("2026-03-30", lisbon)
	assert.NoError(t, err)

	assert.Contains(t, c.Compose("DST", due, at("10:00")), "em 2 dias")
}
