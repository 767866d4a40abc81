package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/services/scheduler/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRunner_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockSchedulerUC(ctrl)
	uc.EXPECT().Tick(gomock.Any()).Return([]models.TickResult{{PaymentID: "pay-1", Result: models.ExecutionResult{Success: true}}}, nil)
	uc.EXPECT().Tick(gomock.Any()).Return(nil, errors.New("store down"))

	r := NewRunner(&models.Config{}, uc, nil)
	assert.Equal(t, time.Minute, r.interval)

	results := r.RunOnce(context.Background())
	assert.Len(t, results, 1)
	assert.Empty(t, r.RunOnce(context.Background()))
}

func TestRunner_StartStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockSchedulerUC(ctrl)
	ticked := make(chan struct{}, 1)
	uc.EXPECT().Tick(gomock.Any()).DoAndReturn(func(context.Context) ([]models.TickResult, error) {
		select {
		case ticked <- struct{}{}:
		default:
		}
		return nil, nil
	}).MinTimes(1)

	cfg := &models.Config{Scheduler: models.SchedulerConfig{Interval: 10 * time.Millisecond}}
	r := NewRunner(cfg, uc, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("runner never ticked")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
}
