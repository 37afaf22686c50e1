package repository

import "testing"

func TestBuildLikeConditionByDialect(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("sqlite", "name", " ", "slug")
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if condition != "(name LIKE ? OR slug LIKE ?)" {
		t.Fatalf("unexpected sqlite condition: %s", condition)
	}

	condition, _ = buildLikeConditionByDialect("postgres", "email")
	if condition != "(email ILIKE ?)" {
		t.Fatalf("unexpected postgres condition: %s", condition)
	}

	if condition, argCount = buildLikeConditionByDialect("sqlite"); condition != "" || argCount != 0 {
		t.Fatalf("empty columns should produce empty condition")
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%nến%", 3)
	if len(args) != 3 {
		t.Fatalf("want 3 args got %d", len(args))
	}
	for _, arg := range args {
		if arg != "%nến%" {
			t.Fatalf("unexpected arg: %v", arg)
		}
	}
}

func TestDayExprByDialect(t *testing.T) {
	if got := dayExprByDialect("sqlite", "created_at"); got != "CAST(date(created_at) AS TEXT)" {
		t.Fatalf("unexpected sqlite day expr: %s", got)
	}
	if got := dayExprByDialect("postgresql", "created_at"); got != "to_char(created_at, 'YYYY-MM-DD')" {
		t.Fatalf("unexpected postgres day expr: %s", got)
	}
}
