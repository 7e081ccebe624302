package matching

// #region radicals

// radicalsMap lists key radicals or components for common beginner
// characters. Multi-character words are decomposed per character.
var radicalsMap = map[rune][]string{
	'你': {"亻 (person)"},
	'您': {"亻 (person)", "心 (heart)"},
	'好': {"女 (woman)", "子 (child)"},
	'是': {"日 (sun)"},
	'我': {"戈 (halberd)"},
	'他': {"亻 (person)"},
	'她': {"女 (woman)"},
	'们': {"亻 (person)", "门 (door)"},
	'再': {"冂 (down box)"},
	'见': {"见 (see)"},
	'吗': {"口 (mouth)"},
	'不': {"一 (one)"},
	'姓': {"女 (woman)"},
	'叫': {"口 (mouth)"},
	'的': {"白 (white)"},
	'英': {"艹 (grass)"},
	'文': {"文 (literature)"},
	'中': {"口 (mouth)"},
	'名': {"夕 (evening)", "口 (mouth)"},
	'一': {"一 (one)"},
	'二': {"二 (two)"},
	'三': {"一 (one)"},
	'四': {"囗 (enclosure)"},
	'五': {"二 (two)"},
	'六': {"亠 (lid)"},
	'七': {"一 (one)"},
	'八': {"八 (eight)"},
	'九': {"乙 (second)"},
	'大': {"大 (big)"},
	'小': {"小 (small)"},
	'人': {"人 (person)"},
	'女': {"女 (woman)"},
	'男': {"田 (field)", "力 (power)"},
	'口': {"口 (mouth)"},
	'家': {"宀 (roof)"},
	'学': {"子 (child)"},
	'生': {"生 (life)"},
	'老': {"耂 (old)"},
	'师': {"巾 (cloth)"},
}

// sharedCharGloss gives short glosses for characters that recur across
// vocabulary words, used to build association tips.
var sharedCharGloss = map[rune]string{
	'学': "study/learn",
	'生': "student/life",
	'友': "friend",
	'室': "room",
	'同': "same/together",
	'中': "middle/China",
	'文': "language/writing",
	'英': "English/heroic",
	'名': "name",
	'电': "electric",
	'话': "speech/talk",
	'号': "number/day",
	'日': "day/sun",
	'人': "person",
	'老': "old/teacher (in 老师)",
	'师': "teacher",
	'们': "plural marker",
	'国': "country",
	'校': "school",
	'课': "class/lesson",
	'工': "work",
	'打': "to hit/do (in 打工)",
	'天': "day/sky",
}

// #endregion radicals
