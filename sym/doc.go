// Package sym ships a built-in catalog of named symbols and emoji and
// a process-wide default resolver over it.
//
// The catalog is ordinary data fed through core.Build — the engine in
// core/resolve works for any catalog; this package merely provides a
// useful one. Names follow the dotted-notation convention: a base name
// optionally narrowed by modifiers, e.g.
//
//	sym.Resolve("arrow.r.double")   // ⇒
//	sym.Resolve("gt.eq.slant")      // ⩾
//	sym.Resolve("emoji.face.grin")  // 😀
//
// Construction happens once, on first use, behind a sync.Once guard:
// concurrent first callers cannot race the build or observe a
// partially built tree, and no lock is taken afterwards.
package sym
