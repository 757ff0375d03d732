package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"loadvoice-synqall/internal/domain"
	testlog "loadvoice-synqall/internal/testutil"
)

type fakeSession struct {
	ctx context.Context

	mu     sync.Mutex
	marked int
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(*sarama.ConsumerMessage, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked++
}

func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "" }
func (s *fakeSession) GenerationID() int32                      { return 0 }

func (s *fakeSession) MarkedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marked
}

type fakeClaim struct {
	ch chan *sarama.ConsumerMessage
}

func (c fakeClaim) Topic() string              { return "t" }
func (c fakeClaim) Partition() int32           { return 0 }
func (c fakeClaim) InitialOffset() int64       { return 0 }
func (c fakeClaim) HighWaterMarkOffset() int64 { return 0 }
func (c fakeClaim) Messages() <-chan *sarama.ConsumerMessage {
	return c.ch
}

func claimOf(msgs ...*sarama.ConsumerMessage) fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	close(ch)
	return fakeClaim{ch: ch}
}

func newTestConsumer(rec *testlog.Recorder, onRateCon RateConFunc, onExtraction ExtractionFunc) *Consumer {
	return &Consumer{
		logger: rec.Logger(),
		routes: map[string]route{
			"ratecon": rateConRoute(onRateCon),
			"calls":   extractionRoute(onExtraction),
		},
	}
}

func TestConsumeClaim_BadJSON_Skips(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := newTestConsumer(rec,
		func(context.Context, RateConEvent) error {
			t.Fatal("handler must not be called")
			return nil
		},
		func(context.Context, domain.CallExtraction) error {
			t.Fatal("handler must not be called")
			return nil
		},
	)
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	err := h.ConsumeClaim(sess, claimOf(
		&sarama.ConsumerMessage{Topic: "ratecon", Value: []byte("not-json")},
		&sarama.ConsumerMessage{Topic: "calls", Value: []byte("{")},
	))
	require.NoError(t, err)
	require.Equal(t, 2, sess.MarkedCount())
	require.Equal(t, []string{"kafka skipping message", "kafka skipping message"}, rec.Messages("warn"))
}

func TestConsumeClaim_InvalidLoadID_Skips(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	calls := 0
	c := newTestConsumer(rec, func(context.Context, RateConEvent) error {
		calls++
		return nil
	}, nil)
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	err := h.ConsumeClaim(sess, claimOf(
		&sarama.ConsumerMessage{Topic: "ratecon", Value: []byte(`{"load_id":"  ","event":"sent"}`)},
	))
	require.NoError(t, err)
	require.Equal(t, 1, sess.MarkedCount())
	require.Zero(t, calls)
}

func TestConsumeClaim_PermanentHandlerError_Marks(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := newTestConsumer(rec, func(context.Context, RateConEvent) error {
		return Permanent(errors.New("load not found"))
	}, nil)
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	body := `{"load_id":"` + uuid.NewString() + `","event":"signed"}`
	err := h.ConsumeClaim(sess, claimOf(&sarama.ConsumerMessage{Topic: "ratecon", Value: []byte(body)}))
	require.NoError(t, err)
	require.Equal(t, 1, sess.MarkedCount())
}

func TestConsumeClaim_TransientError_ReturnsForRetry(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	sentinel := errors.New("db down")
	c := newTestConsumer(rec, func(context.Context, RateConEvent) error { return sentinel }, nil)
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	body := `{"load_id":"` + uuid.NewString() + `","event":"signed"}`
	err := h.ConsumeClaim(sess, claimOf(&sarama.ConsumerMessage{Topic: "ratecon", Value: []byte(body)}))
	require.ErrorIs(t, err, sentinel)
	require.Zero(t, sess.MarkedCount())
	require.Equal(t, []string{"kafka handle failed, retrying"}, rec.Messages("error"))
}

func TestConsumeClaim_Success_Marks(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	loadID, callID, ownerID := uuid.New(), uuid.New(), uuid.New()

	var gotEvent RateConEvent
	var gotCall domain.CallExtraction
	c := newTestConsumer(rec,
		func(_ context.Context, ev RateConEvent) error {
			gotEvent = ev
			return nil
		},
		func(_ context.Context, e domain.CallExtraction) error {
			gotCall = e
			return nil
		},
	)
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	rateCon := `{"load_id":"` + loadID.String() + `","event":" Signed ","details":"envelope 9"}`
	call := `{
		"call_id":"` + callID.String() + `",
		"owner_id":"` + ownerID.String() + `",
		"transcription_confidence":0.92,
		"fields":[{"name":" origin_city ","value":"Reno","confidence":0.8}],
		"qualified":true
	}`
	err := h.ConsumeClaim(sess, claimOf(
		&sarama.ConsumerMessage{Topic: "ratecon", Value: []byte(rateCon)},
		&sarama.ConsumerMessage{Topic: "calls", Value: []byte(call)},
		&sarama.ConsumerMessage{Topic: "other", Value: []byte(`{}`)},
	))
	require.NoError(t, err)
	require.Equal(t, 3, sess.MarkedCount())

	require.Equal(t, loadID, gotEvent.LoadID)
	require.Equal(t, domain.EventSigned, gotEvent.Event)
	require.Equal(t, "envelope 9", gotEvent.Details)

	require.Equal(t, callID, gotCall.CallID)
	require.Equal(t, ownerID, gotCall.OwnerID)
	require.True(t, gotCall.Outcome.Qualified)
	require.Equal(t, "origin_city", gotCall.Fields[0].Name)
	require.Equal(t, []string{"kafka message on unrouted topic"}, rec.Messages("warn"))
}
