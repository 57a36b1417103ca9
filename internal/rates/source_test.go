package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/huuhoait/credit-structuring-core/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetBaseRate_FetchesFromFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rate":0.0675}`))
	}))
	defer server.Close()

	source := New(zap.NewNop(), Config{FeedURL: server.URL})

	rate, err := source.GetBaseRate(context.Background(), domain.BaseRatePrime)

	assert.NoError(t, err)
	assert.Equal(t, 0.0675, rate)
}

func TestGetBaseRate_FallsBackWhenFeedUnconfigured(t *testing.T) {
	source := New(zap.NewNop(), Config{})

	rate, err := source.GetBaseRate(context.Background(), domain.BaseRateSOFR)

	assert.NoError(t, err)
	assert.Equal(t, fallbackRates[domain.BaseRateSOFR], rate)
}

func TestGetBaseRate_FallsBackOnFeedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source := New(zap.NewNop(), Config{FeedURL: server.URL})

	rate, err := source.GetBaseRate(context.Background(), domain.BaseRateTreasury)

	assert.NoError(t, err)
	assert.Equal(t, fallbackRates[domain.BaseRateTreasury], rate)
}

func TestGetBaseRate_UnknownKindWithoutFeedErrors(t *testing.T) {
	source := New(zap.NewNop(), Config{})

	_, err := source.GetBaseRate(context.Background(), domain.BaseRateKind("unknown"))

	assert.Error(t, err)
}
