package sym

import "github.com/katalvlaran/symdex/core"

// Spec helpers. Catalog data is declarative: each entry is a name bound
// to a symbol (a default variant plus modifier-narrowed variants) or a
// nested module. Variant order matters twice — it fixes the canonical
// modifier display order and breaks ties between identical sets — so
// the tables below list the default first and related variants grouped.

// single binds name to a symbol with only a default variant.
func single(name, value string) core.EntrySpec {
	return symbol(name, v(value))
}

// symbol binds name to a symbol with the given variants.
func symbol(name string, variants ...core.VariantSpec) core.EntrySpec {
	return core.EntrySpec{Name: name, Symbol: &core.SymbolSpec{Variants: variants}}
}

// v declares one variant: the value narrowed by the given modifiers.
func v(value string, modifiers ...string) core.VariantSpec {
	return core.VariantSpec{Modifiers: modifiers, Value: value}
}

// dv declares a deprecated variant.
func dv(value, message, hint string, modifiers ...string) core.VariantSpec {
	return core.VariantSpec{Modifiers: modifiers, Value: value, Deprecated: message, Hint: hint}
}

// alias binds name to a deprecated symbol entry pointing readers at its
// replacement. The variants still resolve; callers see an advisory.
func alias(name, message, hint string, variants ...core.VariantSpec) core.EntrySpec {
	return core.EntrySpec{
		Name:       name,
		Symbol:     &core.SymbolSpec{Variants: variants},
		Deprecated: message,
		Hint:       hint,
	}
}

// module binds name to a nested module.
func module(name string, entries ...core.EntrySpec) core.EntrySpec {
	return core.EntrySpec{Name: name, Module: &core.ModuleSpec{Entries: entries}}
}

// entries assembles the full shipped catalog.
func entries() []core.EntrySpec {
	out := make([]core.EntrySpec, 0, 96)
	out = append(out, arrows()...)
	out = append(out, relations()...)
	out = append(out, operators()...)
	out = append(out, greek()...)
	out = append(out, delimiters()...)
	out = append(out, misc()...)
	out = append(out, emoji())

	return out
}

// arrows covers the directional arrow family. Canonical modifier order
// for "arrow" is r, l, t, b, double, triple, long, hook — the order the
// tokens first appear below.
func arrows() []core.EntrySpec {
	return []core.EntrySpec{
		symbol("arrow",
			v("→"),                       // →
			v("←", "l"),                  // ←
			v("↑", "t"),                  // ↑
			v("↓", "b"),                  // ↓
			v("⇒", "double"),             // ⇒
			v("⇐", "l", "double"),        // ⇐
			v("⇑", "t", "double"),        // ⇑
			v("⇓", "b", "double"),        // ⇓
			v("⇛", "triple"),             // ⇛
			v("⇚", "l", "triple"),        // ⇚
			v("⟶", "long"),               // ⟶
			v("⟵", "l", "long"),          // ⟵
			v("⟹", "long", "double"),     // ⟹
			v("⟸", "l", "long", "double"), // ⟸
			v("↪", "hook"),               // ↪
			v("↩", "l", "hook"),          // ↩
		),
		symbol("arrowhead",
			v("⮞"),      // ⮞
			v("⮜", "l"), // ⮜
			v("⮝", "t"), // ⮝
			v("⮟", "b"), // ⮟
		),
		symbol("harpoon",
			v("⇀"),           // ⇀
			v("↽", "l"),      // ↽
			v("↾", "t"),      // ↾
			v("⇃", "b"),      // ⇃
			v("⇌", "pair"),   // ⇌
			v("⇋", "l", "pair"), // ⇋
		),
	}
}

// relations covers comparison and set-membership relations.
func relations() []core.EntrySpec {
	return []core.EntrySpec{
		symbol("eq",
			v("="),
			v("≠", "not"),    // ≠
			v("≡", "triple"), // ≡
			v("≣", "quad"),   // ≣
			v("≈", "approx"), // ≈
		),
		symbol("lt",
			v("<"),
			v("≤", "eq"),          // ≤
			v("⩽", "eq", "slant"), // ⩽
			v("≮", "not"),         // ≮
			v("≰", "eq", "not"),   // ≰
			v("≪", "double"),      // ≪
		),
		symbol("gt",
			v(">"),
			v("≥", "eq"),          // ≥
			v("⩾", "eq", "slant"), // ⩾
			v("≯", "not"),         // ≯
			v("≱", "eq", "not"),   // ≱
			v("≫", "double"),      // ≫
		),
		symbol("subset",
			v("⊂"),              // ⊂
			v("⊆", "eq"),        // ⊆
			v("⊄", "not"),       // ⊄
			v("⊈", "eq", "not"), // ⊈
		),
		symbol("supset",
			v("⊃"),              // ⊃
			v("⊇", "eq"),        // ⊇
			v("⊅", "not"),       // ⊅
			v("⊉", "eq", "not"), // ⊉
		),
		symbol("in",
			v("∈"),        // ∈
			v("∉", "not"), // ∉
			v("∋", "rev"), // ∋
		),
		symbol("prec",
			v("≺"),       // ≺
			v("⪯", "eq"), // ⪯
		),
		symbol("succ",
			v("≻"),       // ≻
			v("⪰", "eq"), // ⪰
		),
	}
}

// operators covers arithmetic and calculus operators.
func operators() []core.EntrySpec {
	return []core.EntrySpec{
		symbol("plus",
			v("+"),
			v("±", "minus"),  // ±
			v("⊕", "circle"), // ⊕
			v("∔", "dot"),    // ∔
		),
		symbol("minus",
			v("−"),           // −
			v("∓", "plus"),   // ∓
			v("⊖", "circle"), // ⊖
			v("∸", "dot"),    // ∸
		),
		symbol("times",
			v("×"),           // ×
			v("⊗", "circle"), // ⊗
			v("⨉", "big"),    // ⨉
		),
		symbol("div",
			v("÷"),           // ÷
			v("⊘", "circle"), // ⊘
		),
		symbol("sum",
			v("∑"),           // ∑
			v("⨆", "square"), // ⨆
		),
		single("product", "∏"), // ∏
		symbol("integral",
			v("∫"),           // ∫
			v("∬", "double"), // ∬
			v("∭", "triple"), // ∭
			v("∮", "cont"),   // ∮
		),
		symbol("union",
			v("∪"),        // ∪
			v("⋃", "big"), // ⋃
			v("⊎", "dot"), // ⊎
		),
		symbol("sect",
			v("∩"),        // ∩
			v("⋂", "big"), // ⋂
		),
		single("forall", "∀"), // ∀
		symbol("exists",
			v("∃"),        // ∃
			v("∄", "not"), // ∄
		),
		single("nabla", "∇"),    // ∇
		single("partial", "∂"),  // ∂
		single("infinity", "∞"), // ∞
	}
}

// greek covers the letters that carry variant forms; plain letters with
// a single shape get a default-only symbol.
func greek() []core.EntrySpec {
	return []core.EntrySpec{
		single("alpha", "α"),
		single("beta", "β"),
		single("gamma", "γ"),
		single("delta", "δ"),
		symbol("epsilon",
			v("ε"),        // ε
			v("ϵ", "alt"), // ϵ
		),
		symbol("theta",
			v("θ"),        // θ
			v("ϑ", "alt"), // ϑ
		),
		symbol("kappa",
			v("κ"),        // κ
			v("ϰ", "alt"), // ϰ
		),
		single("lambda", "λ"),
		single("mu", "μ"),
		symbol("pi",
			v("π"),        // π
			v("ϖ", "alt"), // ϖ
		),
		symbol("rho",
			v("ρ"),        // ρ
			v("ϱ", "alt"), // ϱ
		),
		symbol("sigma",
			v("σ"),          // σ
			v("ς", "final"), // ς
		),
		symbol("phi",
			v("φ"),        // φ
			v("ϕ", "alt"), // ϕ
		),
		single("omega", "ω"),
	}
}

// delimiters groups paired fences into nested modules so that
// "brace.l", "paren.r.double" and friends read naturally.
func delimiters() []core.EntrySpec {
	return []core.EntrySpec{
		module("brace",
			symbol("l", v("{")),
			symbol("r", v("}")),
			symbol("t", v("⏞")), // ⏞
			symbol("b", v("⏟")), // ⏟
		),
		module("bracket",
			symbol("l",
				v("["),
				v("⟦", "double"), // ⟦
			),
			symbol("r",
				v("]"),
				v("⟧", "double"), // ⟧
			),
			symbol("t", v("⎴")), // ⎴
			symbol("b", v("⎵")), // ⎵
		),
		module("paren",
			symbol("l",
				v("("),
				v("⸨", "double"), // ⸨
			),
			symbol("r",
				v(")"),
				v("⸩", "double"), // ⸩
			),
		),
		symbol("angle",
			v("⟨"),                // ⟨
			v("⟩", "r"),           // ⟩
			v("⟪", "double"),      // ⟪
			v("⟫", "r", "double"), // ⟫
		),
		symbol("bar",
			v("|"),
			v("‖", "double"), // ‖
		),
	}
}

// misc: punctuation, marks, and the catalog's deprecated aliases.
func misc() []core.EntrySpec {
	return []core.EntrySpec{
		symbol("dagger",
			v("†"),           // †
			v("‡", "double"), // ‡
		),
		single("section", "§"),   // §
		single("pilcrow", "¶"),   // ¶
		single("copyright", "©"), // ©
		symbol("dash",
			v("–"),       // – (en)
			v("—", "em"), // —
			v("‒", "fig"), // ‒
		),
		symbol("tick",
			v("✓"),          // ✓
			v("✔", "heavy"), // ✔
			dv("✓", "folded into the default form", "tick", "light"),
		),
		symbol("ballot",
			v("✗"),          // ✗
			v("✘", "heavy"), // ✘
		),
		symbol("star",
			v("★"),            // ★
			v("☆", "outline"), // ☆
		),
		symbol("suit",
			v("♠"),           // ♠ (spade is the default suit)
			v("♥", "heart"),  // ♥
			v("♦", "diamond"), // ♦
			v("♣", "club"),   // ♣
		),
		// Renamed entries kept as deprecated aliases for one release.
		alias("checkmark", "renamed", "tick",
			v("✓"),
			v("✔", "heavy"),
		),
		alias("oo", "renamed", "infinity",
			v("∞"),
		),
	}
}
