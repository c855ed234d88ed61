package handler

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"calendarbot/internal/domain"
	"calendarbot/internal/service"
	"calendarbot/internal/testutil"
)

const (
	userA int64 = 1001
	userB int64 = 2002
)

var testNow = time.Date(2023, time.February, 10, 12, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) (*Handler, *testutil.MemoryStore) {
	t.Helper()
	store := testutil.NewMemoryStore()
	h := NewHandler(
		nil,
		service.NewPartitionService(store),
		service.NewCalendarService(store, service.CalendarSettings{
			Year: 2023,
			Now:  testutil.FixedClock(testNow),
		}),
		testutil.NewTestLogger(),
	)
	return h, store
}

func TestReply_AddThenList(t *testing.T) {
	h, store := newTestHandler(t)

	assert.Equal(t, "Event added: 13.02. Going to Helsinki", h.Reply(userA, "/add 13.2. Going to Helsinki"))
	assert.Equal(t, "13.02. Going to Helsinki", h.Reply(userA, "/list"))
	assert.True(t, store.HasPartition(userA))
}

func TestReply_ListOrdering(t *testing.T) {
	h, _ := newTestHandler(t)

	h.Reply(userA, "/add 1.3. Second")
	h.Reply(userA, "/add 20.2. First")
	h.Reply(userA, "/add 1.1. Gone")

	assert.Equal(t, "20.02. First\n01.03. Second", h.Reply(userA, "/list"))
	assert.Equal(t, "01.01. Gone", h.Reply(userA, "/list past"))
	assert.Equal(t, msgNoEvents, h.Reply(userA, "/list day"))
	assert.Equal(t, msgNoEvents, h.Reply(userA, "/list week"))
	assert.Equal(t, "20.02. First\n01.03. Second", h.Reply(userA, "/list month"))
}

func TestReply_DescriptionTooLong(t *testing.T) {
	h, store := newTestHandler(t)

	long := strings.Repeat("a", domain.MaxDescriptionLength+1)
	assert.Equal(t, msgDescriptionTooLong, h.Reply(userA, "/add 13.2. "+long))
	assert.Equal(t, 0, store.Count(userA))

	exact := strings.Repeat("a", domain.MaxDescriptionLength)
	assert.Equal(t, "Event added: 13.02. "+exact, h.Reply(userA, "/add 13.2. "+exact))
	assert.Equal(t, 1, store.Count(userA))
}

func TestReply_RemoveByDate(t *testing.T) {
	h, _ := newTestHandler(t)

	h.Reply(userA, "/add 13.2. Going to Helsinki")
	h.Reply(userA, "/add 13.2. Sauna")

	assert.Equal(t, msgRemoved, h.Reply(userA, "/remove 13.2."))
	assert.Equal(t, msgNoEvents, h.Reply(userA, "/list"))
}

func TestReply_RemoveIsolatedPerUser(t *testing.T) {
	h, store := newTestHandler(t)

	h.Reply(userA, "/add 13.2. Going to Helsinki")
	h.Reply(userB, "/add 13.2. Going to Helsinki")

	assert.Equal(t, msgRemoved, h.Reply(userA, "/remove Going to Helsinki"))
	assert.Equal(t, 0, store.Count(userA))
	assert.Equal(t, 1, store.Count(userB))
	assert.Equal(t, "13.02. Going to Helsinki", h.Reply(userB, "/list"))
}

func TestReply_RemoveByDateAndDescription(t *testing.T) {
	h, _ := newTestHandler(t)

	h.Reply(userA, "/add 13.2. Sauna")
	h.Reply(userA, "/add 14.2. Sauna")

	assert.Equal(t, msgRemoved, h.Reply(userA, "/remove 13.2. Sauna"))
	assert.Equal(t, "14.02. Sauna", h.Reply(userA, "/list"))
}

func TestReply_RemoveNothingMatches(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.Equal(t, msgRemoved, h.Reply(userA, "/remove 1.1."))
}

func TestReply_Validation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "add without arguments", text: "/add", expected: msgNeedsDescription},
		{name: "add without description", text: "/add 13.2.", expected: msgNeedsDescription},
		{name: "add bad date format", text: "/add 13-2 Trip", expected: msgInvalidDateFormat},
		{name: "add letters in date", text: "/add a.b. Trip", expected: msgInvalidDateFormat},
		{name: "add impossible date", text: "/add 30.2. Trip", expected: msgInvalidDayOrMonth},
		{name: "add month out of range", text: "/add 1.13. Trip", expected: msgInvalidDayOrMonth},
		{name: "remove without arguments", text: "/remove", expected: msgNeedsRemoveTarget},
		{name: "unknown list keyword", text: "/list fortnight", expected: msgInvalidCommand},
		{name: "unknown command", text: "/dance", expected: msgInvalidCommand},
		{name: "plain text", text: "hello there", expected: msgInvalidCommand},
		{name: "empty message", text: "", expected: msgInvalidCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestHandler(t)
			assert.Equal(t, tt.expected, h.Reply(userA, tt.text))
			assert.Equal(t, 0, store.Count(userA))
			assert.False(t, store.HasPartition(userA))
		})
	}
}

func TestReply_HelpAndExamples(t *testing.T) {
	h, store := newTestHandler(t)

	help := h.Reply(userA, "/help")
	assert.Contains(t, help, "The year is 2023")
	assert.Contains(t, help, "should not exceed 50 characters")
	assert.Equal(t, help, h.Reply(userA, "/start"))
	assert.Equal(t, examplesText, h.Reply(userA, "/examples"))
	assert.False(t, store.HasPartition(userA))
}

func TestReply_DuplicateAddsRemovedTogether(t *testing.T) {
	h, store := newTestHandler(t)

	h.Reply(userA, "/add 13.2. Going to Helsinki")
	h.Reply(userA, "/add 13.2. Going to Helsinki")
	assert.Equal(t, 2, store.Count(userA))
	assert.Equal(t, "13.02. Going to Helsinki\n13.02. Going to Helsinki", h.Reply(userA, "/list"))

	assert.Equal(t, msgRemoved, h.Reply(userA, "/remove Going to Helsinki"))
	assert.Equal(t, 0, store.Count(userA))
}

func TestReply_DescriptionKeptVerbatim(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{name: "emoji joined with zero width joiners", description: "Family \U0001F468\u200d\U0001F469\u200d\U0001F467 dinner"},
		{name: "zero width space", description: "Meet\u200bBob"},
		{name: "quotes", description: `Bob's "big" day`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			h.Reply(userA, "/add 14.2. "+tt.description)
			assert.Equal(t, "14.02. "+tt.description, h.Reply(userA, "/list"))

			assert.Equal(t, msgRemoved, h.Reply(userA, "/remove "+tt.description))
			assert.Equal(t, msgNoEvents, h.Reply(userA, "/list"))
		})
	}
}

func TestReply_NeverEmpty(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, text := range []string{"/list", "/list past", "/list day", "/list week", "/list month", "/remove x", "  "} {
		assert.NotEmpty(t, h.Reply(userA, text), text)
	}
}

func TestReply_VerbCaseAndBotSuffix(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.Equal(t, "Event added: 13.02. Trip", h.Reply(userA, "/ADD 13.2. Trip"))
	assert.Equal(t, "13.02. Trip", h.Reply(userA, "/list@calendar_bot"))
}

func TestReply_StorageFailure(t *testing.T) {
	partitionRepo := new(testutil.MockPartitionRepository)
	eventRepo := new(testutil.MockEventRepository)
	p := domain.PartitionFor(userA)

	partitionRepo.On("EnsurePartition", userA).Return(p, nil)
	eventRepo.On("Insert", p, mock.Anything, "Trip").Return(errors.New("connection refused"))
	eventRepo.On("QueryRange", p, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	h := NewHandler(
		nil,
		service.NewPartitionService(partitionRepo),
		service.NewCalendarService(eventRepo, service.CalendarSettings{Year: 2023, Now: testutil.FixedClock(testNow)}),
		testutil.NewTestLogger(),
	)

	assert.Equal(t, msgFailure, h.Reply(userA, "/add 13.2. Trip"))
	assert.Equal(t, msgFailure, h.Reply(userA, "/list"))
	eventRepo.AssertExpectations(t)
}

func TestReply_PartitionFailure(t *testing.T) {
	partitionRepo := new(testutil.MockPartitionRepository)
	eventRepo := new(testutil.MockEventRepository)

	partitionRepo.On("EnsurePartition", userA).Return(domain.Partition{}, errors.New("disk full"))

	h := NewHandler(
		nil,
		service.NewPartitionService(partitionRepo),
		service.NewCalendarService(eventRepo, service.CalendarSettings{Year: 2023}),
		testutil.NewTestLogger(),
	)

	assert.Equal(t, msgFailure, h.Reply(userA, "/add 13.2. Trip"))
	assert.Equal(t, msgInvalidCommand, h.Reply(userA, "/dance"))

	// Rejected arguments never reach storage
	assert.Equal(t, msgInvalidDayOrMonth, h.Reply(userA, "/add 30.2. Trip"))
	assert.Equal(t, msgInvalidCommand, h.Reply(userA, "/list fortnight"))
	assert.Equal(t, msgNeedsRemoveTarget, h.Reply(userA, "/remove"))
	partitionRepo.AssertNumberOfCalls(t, "EnsurePartition", 1)
	eventRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestExport(t *testing.T) {
	h, _ := newTestHandler(t)

	doc, text := h.Export(userA)
	assert.Nil(t, doc)
	assert.Equal(t, msgNoEvents, text)

	h.Reply(userA, "/add 13.2. Going to Helsinki")

	doc, text = h.Export(userA)
	require.NotNil(t, doc)
	assert.Empty(t, text)
	assert.Equal(t, exportFileName, doc.FileName)

	body, err := io.ReadAll(doc.FileReader)
	require.NoError(t, err)
	assert.Contains(t, string(body), "SUMMARY:Going to Helsinki")
	assert.Contains(t, string(body), "DTSTART;VALUE=DATE:20230213")
}

func TestExport_StorageFailure(t *testing.T) {
	partitionRepo := new(testutil.MockPartitionRepository)
	eventRepo := new(testutil.MockEventRepository)
	p := domain.PartitionFor(userA)

	partitionRepo.On("EnsurePartition", userA).Return(p, nil)
	eventRepo.On("ListAll", p).Return(nil, errors.New("timeout"))

	h := NewHandler(
		nil,
		service.NewPartitionService(partitionRepo),
		service.NewCalendarService(eventRepo, service.CalendarSettings{Year: 2023}),
		testutil.NewTestLogger(),
	)

	doc, text := h.Export(userA)
	assert.Nil(t, doc)
	assert.Equal(t, msgFailure, text)
}
