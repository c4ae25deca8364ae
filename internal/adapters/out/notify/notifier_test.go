package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dispatch/internal/adapters/out/notify"
	"dispatch/internal/core/application/events"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMessenger struct {
	sent map[int64][]string
	fail bool
}

func newRecordingMessenger() *recordingMessenger {
	return &recordingMessenger{sent: make(map[int64][]string)}
}

func (m *recordingMessenger) Send(_ context.Context, recipient kernel.UserID, text string) error {
	if m.fail {
		return errors.New("transport down")
	}
	m.sent[recipient.Int64()] = append(m.sent[recipient.Int64()], text)
	return nil
}

func uid(t *testing.T, raw int64) kernel.UserID {
	t.Helper()
	id, err := kernel.NewUserID(raw)
	require.NoError(t, err)
	return id
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newNotifier(t *testing.T, messenger *recordingMessenger) (*notify.Notifier, events.Dispatcher) {
	t.Helper()

	dispatcher := events.NewInMemoryDispatcher()
	notifier := notify.NewNotifier(messenger, []kernel.UserID{uid(t, 1), uid(t, 2)}, testLogger())
	notifier.Register(dispatcher)
	return notifier, dispatcher
}

func TestNotifier_OrderAssignedGoesToCourier(t *testing.T) {
	ctx := context.Background()
	messenger := newRecordingMessenger()
	_, dispatcher := newNotifier(t, messenger)

	dispatcher.Publish(ctx, events.NewEvent(events.EventOrderAssigned, events.OrderAssignedPayload{
		OrderID:       7,
		CourierID:     uid(t, 200),
		CourierName:   "Farrukh | +992900000002",
		ShopName:      "Sultoni Kabob",
		City:          "Dushanbe",
		Address:       "Rudaki 15",
		CustomerPhone: "+992901234567",
		PaymentAmount: 120,
	}))

	require.Len(t, messenger.sent[200], 1)
	assert.Contains(t, messenger.sent[200][0], "Order #7")
	assert.Contains(t, messenger.sent[200][0], "Rudaki 15")
	// Admins are not spammed on assignment.
	assert.Empty(t, messenger.sent[1])
}

func TestNotifier_OrderDeliveredGoesToShopAndAdmins(t *testing.T) {
	ctx := context.Background()
	messenger := newRecordingMessenger()
	_, dispatcher := newNotifier(t, messenger)

	dispatcher.Publish(ctx, events.NewEvent(events.EventOrderDelivered, events.OrderDeliveredPayload{
		OrderID:     7,
		ShopID:      uid(t, 100),
		CourierID:   uid(t, 200),
		CourierName: "Farrukh | +992900000002",
		DeliveredAt: "2026-03-01 18:30:00",
	}))

	require.Len(t, messenger.sent[100], 1)
	require.Len(t, messenger.sent[1], 1)
	require.Len(t, messenger.sent[2], 1)
	assert.Contains(t, messenger.sent[100][0], "2026-03-01 18:30:00")
}

func TestNotifier_OrderCommentGoesToShopAndAdmins(t *testing.T) {
	ctx := context.Background()
	messenger := newRecordingMessenger()
	_, dispatcher := newNotifier(t, messenger)

	dispatcher.Publish(ctx, events.NewEvent(events.EventOrderComment, events.OrderCommentPayload{
		OrderID:  7,
		AuthorID: uid(t, 200),
		ShopID:   uid(t, 100),
		ShopName: "Sultoni Kabob",
		City:     "Dushanbe",
		Address:  "Rudaki 15",
		Text:     "customer not answering",
	}))

	require.Len(t, messenger.sent[100], 1)
	require.Len(t, messenger.sent[1], 1)
	require.Len(t, messenger.sent[2], 1)
	assert.Contains(t, messenger.sent[100][0], "customer not answering")
}

func TestNotifier_UnauthorizedAccessAlertsAdmins(t *testing.T) {
	ctx := context.Background()
	messenger := newRecordingMessenger()
	_, dispatcher := newNotifier(t, messenger)

	dispatcher.Publish(ctx, events.NewEvent(events.EventUnauthorizedAccess, events.UnauthorizedAccessPayload{
		UserID: uid(t, 999),
		Intent: "GET /api/v1/orders",
	}))

	require.Len(t, messenger.sent[1], 1)
	assert.Contains(t, messenger.sent[1][0], "999")
	assert.Empty(t, messenger.sent[999])
}

func TestNotifier_UserRegisteredAlertsAdmins(t *testing.T) {
	ctx := context.Background()
	messenger := newRecordingMessenger()
	_, dispatcher := newNotifier(t, messenger)

	dispatcher.Publish(ctx, events.NewEvent(events.EventUserRegistered, events.UserRegisteredPayload{
		UserID:      uid(t, 100),
		DisplayName: "Sultoni Kabob | +992900000001",
		Role:        user.RoleShop,
	}))

	require.Len(t, messenger.sent[1], 1)
	assert.Contains(t, messenger.sent[1][0], "shop")
	assert.Contains(t, messenger.sent[1][0], "Sultoni Kabob")
}

func TestNotifier_DeliveryFailureDoesNotPropagate(t *testing.T) {
	ctx := context.Background()
	messenger := newRecordingMessenger()
	messenger.fail = true
	_, dispatcher := newNotifier(t, messenger)

	// Publish never panics or surfaces the transport error.
	dispatcher.Publish(ctx, events.NewEvent(events.EventOrderCreated, events.OrderCreatedPayload{
		OrderID:  1,
		ShopID:   uid(t, 100),
		ShopName: "Sultoni Kabob",
	}))
	assert.Empty(t, messenger.sent)
}

func TestWebhookMessenger_Send(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	messenger := notify.NewWebhookMessenger(server.URL)
	err := messenger.Send(context.Background(), uid(t, 200), "Order #7 is assigned to you.")
	require.NoError(t, err)
	assert.True(t, strings.Contains(gotBody, `"recipient":200`))
	assert.True(t, strings.Contains(gotBody, "Order #7"))
}

func TestWebhookMessenger_Send_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	messenger := notify.NewWebhookMessenger(server.URL)
	err := messenger.Send(context.Background(), uid(t, 200), "text")
	require.Error(t, err)
}
