package test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/DrGermanius/receipt-points/internal"
)

var _ = Describe("Store", func() {
	var store *internal.Store

	BeforeEach(func() {
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		store = internal.NewStore(logger.Sugar())
	})

	It("returns a stored receipt by its id", func() {
		ctx := context.Background()
		r := receipt("Target", "2022-01-01", "13:01", "35.35", item("Mountain Dew 12PK", "6.49"))

		id := store.Submit(ctx, r)
		Expect(id).ShouldNot(BeEmpty())
		Expect(id).ShouldNot(ContainSubstring(" "))

		got, err := store.Get(ctx, id)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(got).Should(Equal(r))
	})

	It("generates a distinct id per submission", func() {
		ctx := context.Background()
		r := receipt("Target", "2022-01-01", "13:01", "35.35", item("Mountain Dew 12PK", "6.49"))

		first := store.Submit(ctx, r)
		second := store.Submit(ctx, r)
		Expect(first).ShouldNot(Equal(second))
	})

	It("signals unknown ids", func() {
		_, err := store.Get(context.Background(), "adb6b560-0eef-42bc-9d16-df48f30e89b2")
		Expect(err).Should(MatchError(internal.ErrReceiptNotFound))
	})

	It("drops everything on reset", func() {
		ctx := context.Background()
		id := store.Submit(ctx, receipt("Target", "2022-01-01", "13:01", "35.35", item("Mountain Dew 12PK", "6.49")))

		store.Reset()

		_, err := store.Get(ctx, id)
		Expect(err).Should(MatchError(internal.ErrReceiptNotFound))
	})

	It("keeps every receipt under concurrent submissions", func() {
		const n = 50

		ctx := context.Background()
		r := receipt("Target", "2022-01-01", "13:01", "35.35", item("Mountain Dew 12PK", "6.49"))

		ids := make(chan string, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ids <- store.Submit(ctx, r)
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[string]bool, n)
		for id := range ids {
			Expect(seen[id]).Should(BeFalse())
			seen[id] = true

			_, err := store.Get(ctx, id)
			Expect(err).ShouldNot(HaveOccurred())
		}
		Expect(seen).Should(HaveLen(n))
	})
})
