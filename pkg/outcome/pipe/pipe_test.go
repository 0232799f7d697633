package pipe

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/vrail/vrail/pkg/outcome"
)

func double(_ context.Context, v int) int { return v * 2 }

func TestMap_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, Succeed(21), double)

	if !out.IsSuccess() || out.Value() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestMap_FailureUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")

	calls := 0
	out := Map(ctx, Fail[int](err), func(_ context.Context, v int) int {
		calls++
		return v
	})

	if out.IsSuccess() || !errors.Is(out.Err(), err) {
		t.Fatalf("expected failure 'boom' passed through, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if calls != 0 {
		t.Fatalf("transform must not run on the failure path, ran %d times", calls)
	}
}

func TestMapError_Failure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := MapError(ctx, Fail[int](errors.New("raw")), func(_ context.Context, err error) error {
		return errors.New("wrapped: " + err.Error())
	})

	if out.IsSuccess() || out.Err().Error() != "wrapped: raw" {
		t.Fatalf("expected wrapped error, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestMapError_SuccessUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	out := MapError(ctx, Succeed(7), func(_ context.Context, err error) error {
		calls++
		return err
	})

	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected untouched success, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
	if calls != 0 {
		t.Fatalf("transform must not run on the success path, ran %d times", calls)
	}
}

func TestMapError_IdentityKeepsResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	identity := func(_ context.Context, err error) error { return err }

	err := errors.New("same")
	failed := MapError(ctx, Fail[int](err), identity)
	if failed.IsSuccess() || !errors.Is(failed.Err(), err) {
		t.Fatalf("expected identical failure, got: success=%v, err=%v", failed.IsSuccess(), failed.Err())
	}

	ok := MapError(ctx, Succeed(3), identity)
	if !ok.IsSuccess() || ok.Value() != 3 {
		t.Fatalf("expected identical success, got: success=%v, val=%v", ok.IsSuccess(), ok.Value())
	}
}

func TestFlatMap_SuccessEqualsTransform(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parse := func(_ context.Context, s string) outcome.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return outcome.Failure[int](err)
		}
		return outcome.Success(n)
	}

	direct := parse(ctx, "19")
	chained := FlatMap(ctx, Succeed("19"), parse)

	if !chained.IsSuccess() || chained.Value() != direct.Value() {
		t.Fatalf("expected FlatMap(success(v), g) to equal g(v), got: val=%v, err=%v", chained.Value(), chained.Err())
	}

	badDirect := parse(ctx, "x")
	badChained := FlatMap(ctx, Succeed("x"), parse)
	if badChained.IsSuccess() || badChained.Err().Error() != badDirect.Err().Error() {
		t.Fatalf("expected matching failure, got: success=%v, err=%v", badChained.IsSuccess(), badChained.Err())
	}
}

func TestFlatMap_FailureShortCircuits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("upstream")

	calls := 0
	out := FlatMap(ctx, Fail[string](err), func(_ context.Context, s string) outcome.Result[int] {
		calls++
		return outcome.Success(len(s))
	})

	if out.IsSuccess() || !errors.Is(out.Err(), err) {
		t.Fatalf("expected upstream failure, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if calls != 0 {
		t.Fatalf("transform must not run after a failure, ran %d times", calls)
	}
}

func TestRecover_FailureBecomesSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Recover(ctx, Fail[int](errors.New("boom")), func(_ context.Context, err error) int {
		return -1
	})

	if !out.IsSuccess() || out.Value() != -1 {
		t.Fatalf("expected recovered success with -1, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestRecover_SuccessUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	out := Recover(ctx, Succeed(5), func(_ context.Context, err error) int {
		calls++
		return 0
	})

	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected untouched success, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
	if calls != 0 {
		t.Fatalf("handler must not run on the success path, ran %d times", calls)
	}
}

func TestRecoverWith_RetryAsResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	retryFails := RecoverWith(ctx, Fail[int](errors.New("first")), func(_ context.Context, err error) outcome.Result[int] {
		return outcome.Failure[int](errors.New("second"))
	})
	if retryFails.IsSuccess() || retryFails.Err().Error() != "second" {
		t.Fatalf("expected retry failure 'second', got: success=%v, err=%v", retryFails.IsSuccess(), retryFails.Err())
	}

	retrySucceeds := RecoverWith(ctx, Fail[int](errors.New("first")), func(_ context.Context, err error) outcome.Result[int] {
		return outcome.Success(9)
	})
	if !retrySucceeds.IsSuccess() || retrySucceeds.Value() != 9 {
		t.Fatalf("expected retry success 9, got: success=%v, val=%v", retrySucceeds.IsSuccess(), retrySucceeds.Value())
	}

	calls := 0
	untouched := RecoverWith(ctx, Succeed(4), func(_ context.Context, err error) outcome.Result[int] {
		calls++
		return outcome.Success(0)
	})
	if !untouched.IsSuccess() || untouched.Value() != 4 || calls != 0 {
		t.Fatalf("expected untouched success, got: val=%v, handler calls=%d", untouched.Value(), calls)
	}
}

func TestTry_ErrorFoldsIntoFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, Succeed("nan"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if out.IsSuccess() {
		t.Fatalf("expected failure from attempt error")
	}

	ok := Try(ctx, Succeed("8"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if !ok.IsSuccess() || ok.Value() != 8 {
		t.Fatalf("expected success 8, got: success=%v, val=%v", ok.IsSuccess(), ok.Value())
	}
}

func TestTee_SideEffectOnSuccessOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	out := Tee(ctx, Succeed(3), func(_ context.Context, v int) { seen = v })
	if !out.IsSuccess() || seen != 3 {
		t.Fatalf("expected side effect with 3, got seen=%d", seen)
	}

	seen = 0
	_ = Tee(ctx, Fail[int](errors.New("x")), func(_ context.Context, v int) { seen = v })
	if seen != 0 {
		t.Fatalf("side effect must not run on failure, got seen=%d", seen)
	}
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var gotVal int
	var gotErr error

	_ = DoubleTee(ctx, Succeed(2),
		func(_ context.Context, v int) { gotVal = v },
		func(_ context.Context, err error) { gotErr = err })
	if gotVal != 2 || gotErr != nil {
		t.Fatalf("expected success handler only, got val=%d err=%v", gotVal, gotErr)
	}

	gotVal = 0
	boom := errors.New("boom")
	_ = DoubleTee(ctx, Fail[int](boom),
		func(_ context.Context, v int) { gotVal = v },
		func(_ context.Context, err error) { gotErr = err })
	if gotVal != 0 || !errors.Is(gotErr, boom) {
		t.Fatalf("expected failure handler only, got val=%d err=%v", gotVal, gotErr)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(ctx, Succeed(10),
		func(_ context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
		func(_ context.Context, err error) string { return "err" })
	if got != "ok:10" {
		t.Fatalf("expected 'ok:10', got %q", got)
	}

	got = Finally(ctx, Fail[int](errors.New("x")),
		func(_ context.Context, v int) string { return "ok" },
		func(_ context.Context, err error) string { return "err:" + err.Error() })
	if got != "err:x" {
		t.Fatalf("expected 'err:x', got %q", got)
	}
}
