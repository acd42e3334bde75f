package step

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const (
	luaReduceTimeout        = 200 * time.Millisecond
	sandboxTimeoutViolation = "sandbox timeout"
)

// newSandboxLuaState opens only the base, string, table and math libraries.
func newSandboxLuaState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:    true,
		RegistrySize:    256,
		RegistryMaxSize: 4096,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib(lua.BaseLibName, lua.OpenBase)
	openLib(lua.StringLibName, lua.OpenString)
	openLib(lua.TabLibName, lua.OpenTable)
	openLib(lua.MathLibName, lua.OpenMath)
	return L
}

// buildLuaReduceCode wraps expressions without explicit return.
func buildLuaReduceCode(inline string) string {
	if containsReturn(inline) {
		return inline
	}
	return "return (" + inline + ")"
}

func containsReturn(s string) bool {
	return strings.Contains(s, "return")
}

// runLuaReduce folds values with the inline script. The script sees the
// globals acc, starting at 0, and item, and returns the next acc.
func runLuaReduce(ctx context.Context, inline string, values []int) (int, error) {
	L := newSandboxLuaState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(ctx, luaReduceTimeout)
	defer cancel()
	L.SetContext(ctx)

	fn, err := L.LoadString(buildLuaReduceCode(inline))
	if err != nil {
		return 0, fmt.Errorf("%s: %v", processDataStep, err)
	}
	var acc lua.LValue = lua.LNumber(0)
	for _, v := range values {
		L.SetGlobal("acc", acc)
		L.SetGlobal("item", lua.LNumber(v))
		L.Push(fn)
		if err := L.PCall(0, 1, nil); err != nil {
			if isTimeoutError(err) {
				return 0, fmt.Errorf("%s: %s", processDataStep, sandboxTimeoutViolation)
			}
			return 0, fmt.Errorf("%s: %v", processDataStep, err)
		}
		acc = L.Get(-1)
		L.Pop(1)
	}
	return luaInt(acc)
}

func luaInt(v lua.LValue) (int, error) {
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%s: reduce result must be a number, got %s", processDataStep, v.Type().String())
	}
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s: reduce result is not an integer: %v", processDataStep, f)
	}
	// -MinInt is a power of two, so both bounds are exact as float64.
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return 0, fmt.Errorf("%s: reduce result out of range: %v", processDataStep, f)
	}
	return int(f), nil
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}
