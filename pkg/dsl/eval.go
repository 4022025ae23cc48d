package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/boardrec/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("game", cel.MapType(cel.StringType, cel.DynType)),
	)
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = initCELEnv()
	})
	return celEnv, celEnvErr
}

// Expr 是编译后的桌游过滤表达式，使用 CEL (Common Expression Language) 语法。
// 编译一次后可被多个 goroutine 并发求值。
//
// 可用字段：
//   - game.id / game.name
//   - game.min_players / game.max_players / game.play_time（int）
//   - game.difficulty（double）
//   - game.categories（规范名列表，如 ["STRATEGY", "FAMILY"]）
//
// 示例：
//   - `game.max_players >= 4`
//   - `"FAMILY" in game.categories && game.play_time <= 60`
//   - `game.difficulty < 3.0`
type Expr struct {
	source string
	prg    cel.Program
}

// Compile 编译表达式。表达式必须返回 bool。
func Compile(expr string) (*Expr, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("expression must return bool, got %v", out)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}
	return &Expr{source: expr, prg: prg}, nil
}

// String 返回表达式源码
func (e *Expr) String() string { return e.source }

// Match 对单个条目求值
func (e *Expr) Match(game *core.Game) (bool, error) {
	if game == nil {
		return false, nil
	}
	out, _, err := e.prg.Eval(map[string]any{"game": BuildInput(game)})
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// BuildInput 把条目转换为 CEL 输入
func BuildInput(game *core.Game) map[string]any {
	categories := make([]string, 0, len(game.Categories))
	for _, c := range game.Categories {
		categories = append(categories, c.String())
	}
	return map[string]any{
		"id":          game.ID,
		"name":        game.Name,
		"min_players": int64(game.MinPlayers),
		"max_players": int64(game.MaxPlayers),
		"difficulty":  game.Difficulty,
		"play_time":   int64(game.PlayTime),
		"categories":  categories,
	}
}
