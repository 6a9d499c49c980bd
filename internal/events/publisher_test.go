package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sanyco86/sample-app/internal/events"
	"github.com/sanyco86/sample-app/internal/events/fake"
)

var _ = Describe("KafkaPublisher", func() {
	var (
		fakeWriter *fake.Writer
		publisher  *events.KafkaPublisher
		ctx        context.Context
		event      events.Event
		err        error
	)

	BeforeEach(func() {
		fakeWriter = new(fake.Writer)
		publisher = events.NewPublisher(fakeWriter, time.Second)
		ctx = context.Background()
		event = events.Event{
			Type:       events.UserFollowed,
			ActorID:    "follower-id",
			SubjectID:  "followed-id",
			OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		}
	})

	JustBeforeEach(func() {
		err = publisher.Publish(ctx, event)
	})

	When("the writer accepts the message", func() {
		It("should write one JSON message keyed by the actor", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeWriter.WriteMessagesCallCount()).To(Equal(1))

			writeCtx, msgs := fakeWriter.WriteMessagesArgsForCall(0)
			_, hasDeadline := writeCtx.Deadline()
			Expect(hasDeadline).To(BeTrue())
			Expect(msgs).To(HaveLen(1))
			Expect(string(msgs[0].Key)).To(Equal("follower-id"))

			var decoded map[string]any
			Expect(json.Unmarshal(msgs[0].Value, &decoded)).To(Succeed())
			Expect(decoded).To(HaveKeyWithValue("type", "relationship.followed"))
			Expect(decoded).To(HaveKeyWithValue("actor_id", "follower-id"))
			Expect(decoded).To(HaveKeyWithValue("subject_id", "followed-id"))
			Expect(decoded).To(HaveKeyWithValue("occurred_at", "2024-05-01T10:00:00Z"))
		})
	})

	When("the event has no timestamp", func() {
		BeforeEach(func() {
			event.OccurredAt = time.Time{}
		})

		It("should stamp the current time", func() {
			Expect(err).NotTo(HaveOccurred())
			_, msgs := fakeWriter.WriteMessagesArgsForCall(0)

			var decoded events.Event
			Expect(json.Unmarshal(msgs[0].Value, &decoded)).To(Succeed())
			Expect(decoded.OccurredAt).To(BeTemporally("~", time.Now(), time.Minute))
		})
	})

	When("the writer fails", func() {
		var writeErr error

		BeforeEach(func() {
			writeErr = errors.New("broker unavailable")
			fakeWriter.WriteMessagesReturns(writeErr)
		})

		It("should return the wrapped error", func() {
			Expect(err).To(MatchError(writeErr))
			Expect(err.Error()).To(ContainSubstring("relationship.followed"))
		})
	})

	Describe("Close", func() {
		It("should close the writer", func() {
			Expect(publisher.Close()).To(Succeed())
			Expect(fakeWriter.CloseCallCount()).To(Equal(1))
		})
	})
})

var _ = Describe("NopPublisher", func() {
	It("should accept every event", func() {
		var publisher events.NopPublisher
		Expect(publisher.Publish(context.Background(), events.Event{Type: events.UserSignedUp})).To(Succeed())
		Expect(publisher.Close()).To(Succeed())
	})
})
