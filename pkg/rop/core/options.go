package core

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// WithWorkerOptions limits how many functions collect.CollectFuncs runs at
// once for calls made with the returned context.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}
