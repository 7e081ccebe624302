package catalog

// Compiled-in unit definitions. LoadCatalog can replace these from YAML;
// the data below is the canonical pilot configuration.

// #region default-catalog

// DefaultCatalog returns the built-in three-unit catalog.
func DefaultCatalog() *Catalog {
	return New([]Unit{unit1(), unit2(), unit3()})
}

// #endregion default-catalog

// #region unit1

func unit1() Unit {
	return Unit{
		ID:    "unit1",
		Title: "Getting Acquainted",
		Objectives: []string{
			"Exchange names and surnames",
			"Ask about professions",
			"Describe appearance with simple adjectives",
		},
		FirstQuestion: "你的中文名字是什么？",
		Predetermined: []string{
			"你叫什么名字？",
			"你是医生吗？",
			"你高吗？",
		},
		PersonaNotes: "Student practices introductions; partner answers about name, job, and looks.",
		Questions: []Question{
			{Text: "你叫什么名字？", Keywords: []string{"叫什么", "名字"}},
			{Text: "你姓什么？", Keywords: []string{"姓"}},
			{Text: "你有英文名字吗？", Keywords: []string{"英文名字"}},
			{Text: "你是老师吗？", Keywords: []string{"老师", "医生"}},
			{Text: "你的电话号码是多少？", Keywords: []string{"电话", "号码"}},
			{Text: "你好吗？", Keywords: []string{"你好吗"}},
			{Text: "你高吗？", Keywords: []string{"高"}},
			{Text: "你的朋友是谁？", Keywords: []string{"朋友"}},
		},
		Vocab: []VocabEntry{
			{Hanzi: "你", Pinyin: "nǐ", English: "you (pronoun)"},
			{Hanzi: "好", Pinyin: "hǎo", English: "good (adjective)"},
			{Hanzi: "我", Pinyin: "wǒ", English: "I, me (pronoun)"},
			{Hanzi: "他", Pinyin: "tā", English: "he, him (pronoun)"},
			{Hanzi: "她", Pinyin: "tā", English: "she, her (pronoun)"},
			{Hanzi: "是", Pinyin: "shì", English: "to be (verb)"},
			{Hanzi: "叫", Pinyin: "jiào", English: "to be called (verb)"},
			{Hanzi: "姓", Pinyin: "xìng", English: "to be surnamed (verb)"},
			{Hanzi: "名字", Pinyin: "míngzi", English: "name (noun)"},
			{Hanzi: "老师", Pinyin: "lǎoshī", English: "teacher (noun)"},
			{Hanzi: "学生", Pinyin: "xuéshēng", English: "student (noun)"},
			{Hanzi: "医生", Pinyin: "yīshēng", English: "doctor (noun)"},
			{Hanzi: "朋友", Pinyin: "péngyou", English: "friend (noun)"},
			{Hanzi: "中文", Pinyin: "Zhōngwén", English: "Chinese language (noun)"},
			{Hanzi: "英文", Pinyin: "Yīngwén", English: "English language (noun)"},
			{Hanzi: "高", Pinyin: "gāo", English: "tall (adjective)"},
			{Hanzi: "吗", Pinyin: "ma", English: "question marker (particle)"},
			{Hanzi: "的", Pinyin: "de", English: "possessive marker (particle)"},
			{Hanzi: "呢", Pinyin: "ne", English: "and you? (particle)"},
			{Hanzi: "你好", Pinyin: "nǐ hǎo", English: "hello (expression)"},
			{Hanzi: "再见", Pinyin: "zàijiàn", English: "goodbye (expression)"},
		},
	}
}

// #endregion unit1

// #region unit2

func unit2() Unit {
	return Unit{
		ID:    "unit2",
		Title: "Family",
		Objectives: []string{
			"Describe household size and members",
			"Ask and answer about siblings and pets",
			"Ask about ages",
		},
		FirstQuestion: "你是哪国人？你是哪里人？",
		Predetermined: []string{
			"你家有几口人？",
			"你爸爸妈妈多少岁了？",
			"你多大？",
		},
		PersonaNotes: "Student interviews the partner about family; strict ordered question coverage applies.",
		Questions: []Question{
			{Text: "你是哪国人？你是哪里人？", Keywords: []string{"哪国", "哪里人"}},
			{Text: "你家有几口人？都有谁？", Keywords: []string{"几口人", "都有谁", "口"}},
			{Text: "你有几个哥哥？", Keywords: []string{"几个哥哥", "哥哥"}},
			{Text: "你有几个弟弟？", Keywords: []string{"几个弟弟", "弟弟"}},
			{Text: "你有几个姐姐？", Keywords: []string{"几个姐姐", "姐姐"}},
			{Text: "你有几个妹妹？", Keywords: []string{"几个妹妹", "妹妹"}},
			{Text: "你有宠物吗？是什么？", Keywords: []string{"宠物", "猫", "狗", "鸟"}},
			{Text: "你爸爸妈妈多大？", Keywords: []string{"爸爸", "妈妈", "多大"}},
			{Text: "你多大？", Keywords: []string{"你多大", "岁"}},
			{Text: "她的哥哥也是老师吗？", Keywords: []string{"哥哥", "老师"}},
			{Text: "她的妹妹在哪儿？", Keywords: []string{"妹妹", "在哪儿", "哪里"}},
			{Text: "她的妹妹几年级？", Keywords: []string{"妹妹", "几年级"}},
		},
		Vocab: []VocabEntry{
			{Hanzi: "家", Pinyin: "jiā", English: "family, home (noun)"},
			{Hanzi: "人", Pinyin: "rén", English: "person (noun)"},
			{Hanzi: "口", Pinyin: "kǒu", English: "measure word for family members (measure word)"},
			{Hanzi: "爸爸", Pinyin: "bàba", English: "dad (noun)"},
			{Hanzi: "妈妈", Pinyin: "māma", English: "mom (noun)"},
			{Hanzi: "哥哥", Pinyin: "gēge", English: "older brother (noun)"},
			{Hanzi: "姐姐", Pinyin: "jiějie", English: "older sister (noun)"},
			{Hanzi: "弟弟", Pinyin: "dìdi", English: "younger brother (noun)"},
			{Hanzi: "妹妹", Pinyin: "mèimei", English: "younger sister (noun)"},
			{Hanzi: "兄弟姐妹", Pinyin: "xiōngdì jiěmèi", English: "siblings (noun)"},
			{Hanzi: "有", Pinyin: "yǒu", English: "to have (verb)"},
			{Hanzi: "没有", Pinyin: "méiyǒu", English: "to not have (verb)"},
			{Hanzi: "和", Pinyin: "hé", English: "and (conjunction)"},
			{Hanzi: "几", Pinyin: "jǐ", English: "how many (question word)"},
			{Hanzi: "两", Pinyin: "liǎng", English: "two (number)"},
			{Hanzi: "谁", Pinyin: "shéi", English: "who (question word)"},
			{Hanzi: "宠物", Pinyin: "chǒngwù", English: "pet (noun)"},
			{Hanzi: "猫", Pinyin: "māo", English: "cat (noun)"},
			{Hanzi: "狗", Pinyin: "gǒu", English: "dog (noun)"},
			{Hanzi: "鸟", Pinyin: "niǎo", English: "bird (noun)"},
			{Hanzi: "只", Pinyin: "zhī", English: "measure word for animals (measure word)"},
			{Hanzi: "岁", Pinyin: "suì", English: "years of age (noun)"},
			{Hanzi: "中国", Pinyin: "Zhōngguó", English: "China (proper noun)"},
			{Hanzi: "中国人", Pinyin: "Zhōngguórén", English: "Chinese person (noun)"},
			{Hanzi: "美国", Pinyin: "Měiguó", English: "USA (proper noun)"},
			{Hanzi: "美国人", Pinyin: "Měiguórén", English: "American person (noun)"},
			{Hanzi: "哪国", Pinyin: "nǎ guó", English: "which country (question word)"},
			{Hanzi: "哪里", Pinyin: "nǎlǐ", English: "where (question word)"},
		},
	}
}

// #endregion unit2

// #region unit3

func unit3() Unit {
	return Unit{
		ID:    "unit3",
		Title: "School Life",
		Objectives: []string{
			"Tell time and describe a daily schedule",
			"Talk about classes and school places",
		},
		FirstQuestion: "你今天上什么课？",
		Predetermined: []string{
			"你今天几点起床？",
			"你今天有什么课？",
			"你周末做什么？",
		},
		PersonaNotes: "Student asks about the partner's school day; partner answers briefly.",
		Questions: []Question{
			{Text: "你今天几点起床？", Keywords: []string{"起床", "几点"}},
			{Text: "你今天上什么课？", Keywords: []string{"什么课", "上课"}},
			{Text: "你几点吃午饭？", Keywords: []string{"午饭"}},
			{Text: "你在哪里学习？", Keywords: []string{"哪里学习", "图书馆"}},
			{Text: "你几点睡觉？", Keywords: []string{"睡觉"}},
			{Text: "你周末做什么？", Keywords: []string{"周末"}},
		},
		Vocab: []VocabEntry{
			{Hanzi: "今天", Pinyin: "jīntiān", English: "today (noun)"},
			{Hanzi: "明天", Pinyin: "míngtiān", English: "tomorrow (noun)"},
			{Hanzi: "现在", Pinyin: "xiànzài", English: "now (noun)"},
			{Hanzi: "点", Pinyin: "diǎn", English: "o'clock (measure word)"},
			{Hanzi: "半", Pinyin: "bàn", English: "half (number)"},
			{Hanzi: "早上", Pinyin: "zǎoshang", English: "morning (noun)"},
			{Hanzi: "中午", Pinyin: "zhōngwǔ", English: "noon (noun)"},
			{Hanzi: "下午", Pinyin: "xiàwǔ", English: "afternoon (noun)"},
			{Hanzi: "晚上", Pinyin: "wǎnshang", English: "evening (noun)"},
			{Hanzi: "上课", Pinyin: "shàngkè", English: "to attend class (verb)"},
			{Hanzi: "下课", Pinyin: "xiàkè", English: "to finish class (verb)"},
			{Hanzi: "起床", Pinyin: "qǐchuáng", English: "to get up (verb)"},
			{Hanzi: "睡觉", Pinyin: "shuìjiào", English: "to sleep (verb)"},
			{Hanzi: "上学", Pinyin: "shàngxué", English: "to go to school (verb)"},
			{Hanzi: "学习", Pinyin: "xuéxí", English: "to study (verb)"},
			{Hanzi: "中文课", Pinyin: "Zhōngwén kè", English: "Chinese class (noun)"},
			{Hanzi: "数学", Pinyin: "shùxué", English: "math (noun)"},
			{Hanzi: "科学", Pinyin: "kēxué", English: "science (noun)"},
			{Hanzi: "学校", Pinyin: "xuéxiào", English: "school (noun)"},
			{Hanzi: "图书馆", Pinyin: "túshūguǎn", English: "library (noun)"},
			{Hanzi: "教室", Pinyin: "jiàoshì", English: "classroom (noun)"},
			{Hanzi: "食堂", Pinyin: "shítáng", English: "cafeteria (noun)"},
			{Hanzi: "午饭", Pinyin: "wǔfàn", English: "lunch (noun)"},
			{Hanzi: "周末", Pinyin: "zhōumò", English: "weekend (noun)"},
		},
	}
}

// #endregion unit3
