package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/service/analytics"
	"sync"
)

var _ analyticsService = &analyticsServiceMock{}

type analyticsServiceMock struct {
	GetVelocityTrendsFunc        func(ctx context.Context, input analytics.VelocityInput) (*domain.VelocityTrends, error)
	GetSentimentDistributionFunc func(ctx context.Context, input analytics.SentimentInput) (*domain.SentimentDistribution, error)
	GetTagAnalysisFunc           func(ctx context.Context, input analytics.TagInput) (*domain.TagAnalysis, error)
	GetSourceMetricsFunc         func(ctx context.Context, timeframe domain.Timeframe) (*domain.SourceMetrics, error)
	GetSignalMetricsFunc         func(ctx context.Context, id *uuid.UUID, limit int) ([]domain.SignalMetricsView, error)
	GetDashboardStatsFunc        func(ctx context.Context) (*domain.DashboardStats, error)
	GetTrendingSignalsFunc       func(ctx context.Context, limit int) ([]analytics.TrendingSignal, error)
	GetRecentlyActiveSignalsFunc func(ctx context.Context, hours int, limit int) ([]domain.SignalView, error)

	calls struct {
		GetVelocityTrends []struct {
			Ctx   context.Context
			Input analytics.VelocityInput
		}
		GetSentimentDistribution []struct {
			Ctx   context.Context
			Input analytics.SentimentInput
		}
		GetTagAnalysis []struct {
			Ctx   context.Context
			Input analytics.TagInput
		}
		GetSourceMetrics []struct {
			Ctx       context.Context
			Timeframe domain.Timeframe
		}
		GetSignalMetrics []struct {
			Ctx   context.Context
			ID    *uuid.UUID
			Limit int
		}
		GetDashboardStats []struct {
			Ctx context.Context
		}
		GetTrendingSignals []struct {
			Ctx   context.Context
			Limit int
		}
		GetRecentlyActiveSignals []struct {
			Ctx   context.Context
			Hours int
			Limit int
		}
	}
	lockGetVelocityTrends        sync.RWMutex
	lockGetSentimentDistribution sync.RWMutex
	lockGetTagAnalysis           sync.RWMutex
	lockGetSourceMetrics         sync.RWMutex
	lockGetSignalMetrics         sync.RWMutex
	lockGetDashboardStats        sync.RWMutex
	lockGetTrendingSignals       sync.RWMutex
	lockGetRecentlyActiveSignals sync.RWMutex
}

func (mock *analyticsServiceMock) GetVelocityTrends(ctx context.Context, input analytics.VelocityInput) (*domain.VelocityTrends, error) {
	if mock.GetVelocityTrendsFunc == nil {
		panic("analyticsServiceMock.GetVelocityTrendsFunc: method is nil but analyticsService.GetVelocityTrends was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input analytics.VelocityInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockGetVelocityTrends.Lock()
	mock.calls.GetVelocityTrends = append(mock.calls.GetVelocityTrends, callInfo)
	mock.lockGetVelocityTrends.Unlock()
	return mock.GetVelocityTrendsFunc(ctx, input)
}

func (mock *analyticsServiceMock) GetVelocityTrendsCalls() []struct {
	Ctx   context.Context
	Input analytics.VelocityInput
} {
	var calls []struct {
		Ctx   context.Context
		Input analytics.VelocityInput
	}
	mock.lockGetVelocityTrends.RLock()
	calls = mock.calls.GetVelocityTrends
	mock.lockGetVelocityTrends.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) GetSentimentDistribution(ctx context.Context, input analytics.SentimentInput) (*domain.SentimentDistribution, error) {
	if mock.GetSentimentDistributionFunc == nil {
		panic("analyticsServiceMock.GetSentimentDistributionFunc: method is nil but analyticsService.GetSentimentDistribution was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input analytics.SentimentInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockGetSentimentDistribution.Lock()
	mock.calls.GetSentimentDistribution = append(mock.calls.GetSentimentDistribution, callInfo)
	mock.lockGetSentimentDistribution.Unlock()
	return mock.GetSentimentDistributionFunc(ctx, input)
}

func (mock *analyticsServiceMock) GetSentimentDistributionCalls() []struct {
	Ctx   context.Context
	Input analytics.SentimentInput
} {
	var calls []struct {
		Ctx   context.Context
		Input analytics.SentimentInput
	}
	mock.lockGetSentimentDistribution.RLock()
	calls = mock.calls.GetSentimentDistribution
	mock.lockGetSentimentDistribution.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) GetTagAnalysis(ctx context.Context, input analytics.TagInput) (*domain.TagAnalysis, error) {
	if mock.GetTagAnalysisFunc == nil {
		panic("analyticsServiceMock.GetTagAnalysisFunc: method is nil but analyticsService.GetTagAnalysis was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input analytics.TagInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockGetTagAnalysis.Lock()
	mock.calls.GetTagAnalysis = append(mock.calls.GetTagAnalysis, callInfo)
	mock.lockGetTagAnalysis.Unlock()
	return mock.GetTagAnalysisFunc(ctx, input)
}

func (mock *analyticsServiceMock) GetTagAnalysisCalls() []struct {
	Ctx   context.Context
	Input analytics.TagInput
} {
	var calls []struct {
		Ctx   context.Context
		Input analytics.TagInput
	}
	mock.lockGetTagAnalysis.RLock()
	calls = mock.calls.GetTagAnalysis
	mock.lockGetTagAnalysis.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) GetSourceMetrics(ctx context.Context, timeframe domain.Timeframe) (*domain.SourceMetrics, error) {
	if mock.GetSourceMetricsFunc == nil {
		panic("analyticsServiceMock.GetSourceMetricsFunc: method is nil but analyticsService.GetSourceMetrics was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Timeframe domain.Timeframe
	}{
		Ctx:       ctx,
		Timeframe: timeframe,
	}
	mock.lockGetSourceMetrics.Lock()
	mock.calls.GetSourceMetrics = append(mock.calls.GetSourceMetrics, callInfo)
	mock.lockGetSourceMetrics.Unlock()
	return mock.GetSourceMetricsFunc(ctx, timeframe)
}

func (mock *analyticsServiceMock) GetSourceMetricsCalls() []struct {
	Ctx       context.Context
	Timeframe domain.Timeframe
} {
	var calls []struct {
		Ctx       context.Context
		Timeframe domain.Timeframe
	}
	mock.lockGetSourceMetrics.RLock()
	calls = mock.calls.GetSourceMetrics
	mock.lockGetSourceMetrics.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) GetSignalMetrics(ctx context.Context, id *uuid.UUID, limit int) ([]domain.SignalMetricsView, error) {
	if mock.GetSignalMetricsFunc == nil {
		panic("analyticsServiceMock.GetSignalMetricsFunc: method is nil but analyticsService.GetSignalMetrics was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    *uuid.UUID
		Limit int
	}{
		Ctx:   ctx,
		ID:    id,
		Limit: limit,
	}
	mock.lockGetSignalMetrics.Lock()
	mock.calls.GetSignalMetrics = append(mock.calls.GetSignalMetrics, callInfo)
	mock.lockGetSignalMetrics.Unlock()
	return mock.GetSignalMetricsFunc(ctx, id, limit)
}

func (mock *analyticsServiceMock) GetSignalMetricsCalls() []struct {
	Ctx   context.Context
	ID    *uuid.UUID
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		ID    *uuid.UUID
		Limit int
	}
	mock.lockGetSignalMetrics.RLock()
	calls = mock.calls.GetSignalMetrics
	mock.lockGetSignalMetrics.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if mock.GetDashboardStatsFunc == nil {
		panic("analyticsServiceMock.GetDashboardStatsFunc: method is nil but analyticsService.GetDashboardStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetDashboardStats.Lock()
	mock.calls.GetDashboardStats = append(mock.calls.GetDashboardStats, callInfo)
	mock.lockGetDashboardStats.Unlock()
	return mock.GetDashboardStatsFunc(ctx)
}

func (mock *analyticsServiceMock) GetDashboardStatsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetDashboardStats.RLock()
	calls = mock.calls.GetDashboardStats
	mock.lockGetDashboardStats.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) GetTrendingSignals(ctx context.Context, limit int) ([]analytics.TrendingSignal, error) {
	if mock.GetTrendingSignalsFunc == nil {
		panic("analyticsServiceMock.GetTrendingSignalsFunc: method is nil but analyticsService.GetTrendingSignals was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockGetTrendingSignals.Lock()
	mock.calls.GetTrendingSignals = append(mock.calls.GetTrendingSignals, callInfo)
	mock.lockGetTrendingSignals.Unlock()
	return mock.GetTrendingSignalsFunc(ctx, limit)
}

func (mock *analyticsServiceMock) GetTrendingSignalsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockGetTrendingSignals.RLock()
	calls = mock.calls.GetTrendingSignals
	mock.lockGetTrendingSignals.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) GetRecentlyActiveSignals(ctx context.Context, hours int, limit int) ([]domain.SignalView, error) {
	if mock.GetRecentlyActiveSignalsFunc == nil {
		panic("analyticsServiceMock.GetRecentlyActiveSignalsFunc: method is nil but analyticsService.GetRecentlyActiveSignals was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Hours int
		Limit int
	}{
		Ctx:   ctx,
		Hours: hours,
		Limit: limit,
	}
	mock.lockGetRecentlyActiveSignals.Lock()
	mock.calls.GetRecentlyActiveSignals = append(mock.calls.GetRecentlyActiveSignals, callInfo)
	mock.lockGetRecentlyActiveSignals.Unlock()
	return mock.GetRecentlyActiveSignalsFunc(ctx, hours, limit)
}

func (mock *analyticsServiceMock) GetRecentlyActiveSignalsCalls() []struct {
	Ctx   context.Context
	Hours int
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Hours int
		Limit int
	}
	mock.lockGetRecentlyActiveSignals.RLock()
	calls = mock.calls.GetRecentlyActiveSignals
	mock.lockGetRecentlyActiveSignals.RUnlock()
	return calls
}
