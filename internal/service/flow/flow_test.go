package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/test"
)

type recorder struct {
	reported  []error
	finalized int
	steps     []string
}

func (r *recorder) report(_ context.Context, err error) { r.reported = append(r.reported, err) }
func (r *recorder) finalize()                           { r.finalized++ }

func TestRun(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		workflow  func(r *recorder) Workflow
		wantErr   error
		wantSteps []string
	}{
		{
			name: "success finalizes without report",
			workflow: func(r *recorder) Workflow {
				return func(ctx context.Context) error {
					r.steps = append(r.steps, "a", "b")
					return nil
				}
			},
			wantSteps: []string{"a", "b"},
		},
		{
			name: "error short-circuits remaining steps",
			workflow: func(r *recorder) Workflow {
				return func(ctx context.Context) error {
					r.steps = append(r.steps, "a")
					fetch := func() error { return boom }
					if err := fetch(); err != nil {
						return err
					}
					r.steps = append(r.steps, "b")
					return nil
				}
			},
			wantErr:   boom,
			wantSteps: []string{"a"},
		},
		{
			name: "panic becomes an invariant error",
			workflow: func(r *recorder) Workflow {
				return func(ctx context.Context) error {
					r.steps = append(r.steps, "a")
					panic("quiz vanished")
				}
			},
			wantErr:   ErrInvariant,
			wantSteps: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			err := Run(context.Background(), tt.workflow(r), r.report, r.finalize)

			assert.Equal(t, 1, r.finalized)
			assert.Equal(t, tt.wantSteps, r.steps)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.Empty(t, r.reported)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			require.Len(t, r.reported, 1)
			assert.ErrorIs(t, r.reported[0], tt.wantErr)
		})
	}
}

func TestRun_FinalizeAfterReport(t *testing.T) {
	var order []string
	_ = Run(context.Background(),
		func(ctx context.Context) error { return core.ErrNotANumber },
		func(ctx context.Context, err error) { order = append(order, "report") },
		func() { order = append(order, "finalize") },
	)
	assert.Equal(t, []string{"report", "finalize"}, order)
}

func TestAsk_TrimsAnswer(t *testing.T) {
	p := test.NewPrompter("  Rome \n")

	answer, err := Ask(context.Background(), p, "Capital of Italy? ")
	require.NoError(t, err)

	assert.Equal(t, "Rome", answer)
	assert.Equal(t, []string{"Capital of Italy? "}, p.Prompts)
}

func TestAskPrefilled_PassesInitial(t *testing.T) {
	p := test.NewPrompter("edited ")

	answer, err := AskPrefilled(context.Background(), p, "Question: ", "current text")
	require.NoError(t, err)

	assert.Equal(t, "edited", answer)
	assert.Equal(t, []string{"current text"}, p.Prefills)
}

func TestAsk_PropagatesError(t *testing.T) {
	_, err := Ask(context.Background(), test.NewPrompter(), "anything")
	assert.ErrorIs(t, err, core.ErrAborted)
}
