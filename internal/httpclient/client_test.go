package httpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ttbdata/ecfr-sync/internal/httpclient"
)

func TestHTTPClient(t *testing.T) {
	t.Parallel()
	RegisterFailHandler(Fail)
	RunSpecs(t, "HTTPClient Suite")
}

var _ = Describe("DefaultClient", func() {
	var (
		client     httpclient.Client
		mockServer *httptest.Server
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
	})

	AfterEach(func() {
		if mockServer != nil {
			mockServer.Close()
		}
	})

	Describe("NewDefaultClient", func() {
		It("should create client with custom timeout", func() {
			client = httpclient.NewDefaultClient(5 * time.Second)
			Expect(client).NotTo(BeNil())
		})

		It("should use default timeout when zero is provided", func() {
			client = httpclient.NewDefaultClient(0)
			Expect(client).NotTo(BeNil())
		})
	})

	Describe("Get", func() {
		Context("Successful requests", func() {
			BeforeEach(func() {
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					Expect(r.Header.Get("User-Agent")).To(Equal("ecfr-sync/1.0"))

					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte(`{"titles": []}`))
				}))
				client = httpclient.NewDefaultClient(30 * time.Second)
			})

			It("should successfully fetch data", func() {
				data, err := client.Get(ctx, mockServer.URL)
				Expect(err).NotTo(HaveOccurred())
				Expect(data).To(Equal([]byte(`{"titles": []}`)))
			})
		})

		Context("HTTP error responses", func() {
			BeforeEach(func() {
				client = httpclient.NewDefaultClient(30 * time.Second)
			})

			It("should handle 404 Not Found without retrying", func() {
				var calls int32
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					atomic.AddInt32(&calls, 1)
					w.WriteHeader(http.StatusNotFound)
					_, _ = w.Write([]byte("Not Found"))
				}))

				_, err := client.Get(ctx, mockServer.URL)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("HTTP 404"))
				Expect(atomic.LoadInt32(&calls)).To(Equal(int32(1)))
			})

			It("should retry on 500 and succeed", func() {
				var calls int32
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					if atomic.AddInt32(&calls, 1) < 3 {
						w.WriteHeader(http.StatusInternalServerError)
						return
					}
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte("ok"))
				}))

				data, err := client.Get(ctx, mockServer.URL)
				Expect(err).NotTo(HaveOccurred())
				Expect(data).To(Equal([]byte("ok")))
				Expect(atomic.LoadInt32(&calls)).To(Equal(int32(3)))
			})

			It("should give up after exhausting retries", func() {
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusServiceUnavailable)
				}))

				_, err := client.Get(ctx, mockServer.URL)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("HTTP 503"))
			})
		})

		Context("Context cancellation", func() {
			It("should abort when the context is cancelled", func() {
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					time.Sleep(200 * time.Millisecond)
					w.WriteHeader(http.StatusOK)
				}))
				client = httpclient.NewDefaultClient(30 * time.Second)

				cancelCtx, cancel := context.WithCancel(ctx)
				cancel()

				_, err := client.Get(cancelCtx, mockServer.URL)
				Expect(err).To(HaveOccurred())
			})
		})

		Context("Invalid URLs", func() {
			It("should fail on malformed URL", func() {
				client = httpclient.NewDefaultClient(30 * time.Second)
				_, err := client.Get(ctx, "://not-a-url")
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
