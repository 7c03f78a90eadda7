package sym

import "github.com/katalvlaran/symdex/core"

// emoji builds the nested emoji module. Several variants are
// multi-codepoint: presentation selectors (U+FE0F) and ZWJ sequences
// ride along as part of the value.
func emoji() core.EntrySpec {
	return module("emoji",
		module("face",
			symbol("grin",
				v("\U0001F600"),                      // 😀
				v("\U0001F601️", "beaming"),     // 😁︎ with presentation selector
				v("\U0001F605", "sweat"),             // 😅
			),
			symbol("joy",
				v("\U0001F602"),          // 😂
				v("\U0001F923", "floor"), // 🤣
			),
			single("wink", "\U0001F609"),    // 😉
			single("neutral", "\U0001F610"), // 😐
			symbol("sad",
				v("☹️"),         // ☹️
				v("\U0001F622", "tear"),   // 😢
				v("\U0001F62D", "loud"),   // 😭
			),
		),
		module("animal",
			symbol("cat",
				v("\U0001F408"),                        // 🐈
				v("\U0001F408‍⬛", "black"),   // 🐈‍⬛ ZWJ sequence
			),
			symbol("dog",
				v("\U0001F415"),                      // 🐕
				v("\U0001F415‍\U0001F9BA", "service"), // 🐕‍🦺 ZWJ sequence
			),
			single("fox", "\U0001F98A"), // 🦊
		),
		symbol("heart",
			v("❤️"),                          // ❤️
			v("\U0001F499", "blue"),                    // 💙
			v("❤️‍\U0001F525", "fire"),  // ❤️‍🔥 ZWJ sequence
			v("\U0001F494", "broken"),                  // 💔
		),
		single("rocket", "\U0001F680"), // 🚀
	)
}
