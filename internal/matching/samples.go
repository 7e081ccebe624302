package matching

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// #region templates

type sampleTemplate struct {
	chinese string
	// pinyin may contain {p}, replaced with the word's own pinyin.
	pinyin  string
	english string
}

var unit2Samples = map[string]sampleTemplate{
	"爸爸":   {"这是我爸爸。", "Zhè shì wǒ {p}.", "This is my dad."},
	"妈妈":   {"这是我妈妈。", "Zhè shì wǒ {p}.", "This is my mom."},
	"爷爷":   {"我爱我的爷爷。", "Wǒ ài wǒ de {p}.", "I love my grandpa."},
	"奶奶":   {"奶奶很亲切。", "{p} hěn qīnqiè.", "Grandma is kind."},
	"哥哥":   {"我有一个哥哥。", "Wǒ yǒu yí gè {p}.", "I have an older brother."},
	"姐姐":   {"我有一个姐姐。", "Wǒ yǒu yí gè {p}.", "I have an older sister."},
	"弟弟":   {"我有一个弟弟。", "Wǒ yǒu yí gè {p}.", "I have a younger brother."},
	"妹妹":   {"我有一个妹妹。", "Wǒ yǒu yí gè {p}.", "I have a younger sister."},
	"兄弟姐妹": {"我有兄弟姐妹。", "Wǒ yǒu {p}.", "I have siblings."},
	"儿子":   {"他有一个儿子。", "Tā yǒu yí gè {p}.", "He has a son."},
	"女儿":   {"她有一个女儿。", "Tā yǒu yí gè {p}.", "She has a daughter."},
	"家":    {"我爱我的家。", "Wǒ ài wǒ de {p}.", "I love my family/home."},
	"人":    {"这里有很多人。", "Zhèlǐ yǒu hěn duō {p}.", "There are many people here."},
	"有":    {"我有两个姐妹。", "Wǒ {p} liǎng gè jiěmèi.", "I have two sisters."},
	"和":    {"我和他是同学。", "Wǒ {p} tā shì tóngxué.", "He and I are classmates."},
	"几":    {"你家有几口人？", "Nǐ jiā yǒu {p} kǒu rén?", "How many people are in your family?"},
	"两":    {"我们家有两个人。", "Wǒmen jiā yǒu {p} gè rén.", "There are two people in my family."},
	"宠物":   {"我有一个宠物。", "Wǒ yǒu yí gè {p}.", "I have a pet."},
	"猫":    {"我有一只猫。", "Wǒ yǒu yì zhī {p}.", "I have a cat."},
	"狗":    {"我喜欢狗。", "Wǒ xǐhuān {p}.", "I like dogs."},
	"鸟":    {"那只鸟很小。", "Nà zhī {p} hěn xiǎo.", "That bird is small."},
	"只":    {"我有两只狗。", "Wǒ yǒu liǎng zhī gǒu.", "I have two dogs."},
	"口":    {"我家有四口人。", "Wǒ jiā yǒu sì {p} rén.", "There are four people in my family."},
}

var unit3Samples = map[string]sampleTemplate{
	"今天":  {"今天我有中文课。", "{p} wǒ yǒu Zhōngwén kè.", "I have Chinese class today."},
	"明天":  {"明天我们有活动。", "{p} wǒmen yǒu huódòng.", "We have an activity tomorrow."},
	"昨天":  {"昨天我学习了中文。", "{p} wǒ xuéxí le Zhōngwén.", "Yesterday I studied Chinese."},
	"现在":  {"现在是三点。", "Xiànzài shì sān diǎn.", "It is three o'clock now."},
	"半":   {"现在两点半。", "Xiànzài liǎng diǎn bàn.", "It is half past two."},
	"上课":  {"我早上上课。", "Wǒ zǎoshang {p}.", "I have class in the morning."},
	"下课":  {"我们四点下课。", "Wǒmen sì diǎn {p}.", "We finish class at four."},
	"中文课": {"我喜欢中文课。", "Wǒ xǐhuān {p}.", "I like Chinese class."},
	"数学":  {"我明天有数学课。", "Wǒ míngtiān yǒu {p} kè.", "I have math class tomorrow."},
	"历史":  {"他在学历史。", "Tā zài xué {p}.", "He is studying history."},
	"科学":  {"我们喜欢科学。", "Wǒmen xǐhuān {p}.", "We like science."},
	"起床":  {"我六点起床。", "Wǒ liù diǎn {p}.", "I get up at six."},
	"睡觉":  {"我十点睡觉。", "Wǒ shí diǎn {p}.", "I go to sleep at ten."},
	"上学":  {"我七点上学。", "Wǒ qī diǎn {p}.", "I go to school at seven."},
	"学习":  {"我每天学习。", "Wǒ měitiān {p}.", "I study every day."},
	"吃饭":  {"我们一起吃饭。", "Wǒmen yìqǐ {p}.", "We eat together."},
	"早饭":  {"我七点吃早饭。", "Wǒ qī diǎn chī {p}.", "I eat breakfast at seven."},
	"学校":  {"我在学校学习。", "Wǒ zài {p} xuéxí.", "I study at school."},
	"图书馆": {"我在图书馆看书。", "Wǒ zài {p} kàn shū.", "I read in the library."},
	"教室":  {"我们在教室上课。", "Wǒmen zài {p} shàngkè.", "We have class in the classroom."},
	"食堂":  {"我们在食堂吃饭。", "Wǒmen zài {p} chīfàn.", "We eat in the cafeteria."},
}

// #endregion templates

// #region generate

// GenerateSample produces a short beginner sentence containing hanzi.
// Unit-specific templates win; otherwise a pattern is picked from the
// part-of-speech annotation in the English gloss.
func GenerateSample(unitID, hanzi, pinyin, meaning string) SampleSentence {
	if hanzi == "呢" {
		return SampleSentence{Chinese: "我是学生。你呢？", Pinyin: "Wǒ shì xuéshēng. Nǐ ne?", English: "I am a student. How about you?"}
	}
	var t sampleTemplate
	var ok bool
	switch unitID {
	case "unit2":
		t, ok = unit2Samples[hanzi]
	case "unit3":
		t, ok = unit3Samples[hanzi]
	}
	if ok {
		return SampleSentence{
			Chinese: t.chinese,
			Pinyin:  strings.ReplaceAll(t.pinyin, "{p}", pinyin),
			English: t.english,
		}
	}
	if hanzi == "中文" || hanzi == "汉语" {
		return SampleSentence{
			Chinese: fmt.Sprintf("我喜欢学%s。", hanzi),
			Pinyin:  fmt.Sprintf("Wǒ xǐhuān xué %s.", pinyin),
			English: "I like studying Chinese.",
		}
	}
	return fallbackSample(hanzi, pinyin, meaning)
}

// fallbackSample classifies the word from its gloss annotation, e.g.
// "older brother (noun)", and fills a safe pattern.
func fallbackSample(hanzi, pinyin, meaning string) SampleSentence {
	base, pos := parseGloss(meaning)
	switch {
	case hanzi == "你好" || hanzi == "您好" || hanzi == "再见" || strings.Contains(pos, "expression") || pos == "phrase":
		return SampleSentence{Chinese: hanzi + "!", Pinyin: pinyin + "!", English: firstNonEmpty(base, meaning, "(expression)")}
	case strings.Contains(pos, "pronoun"):
		return SampleSentence{Chinese: hanzi + "是学生。", Pinyin: titleFirst(pinyin) + " shì xuéshēng.", English: "They are a student."}
	case strings.Contains(pos, "verb") || strings.HasPrefix(base, "to "):
		return SampleSentence{
			Chinese: fmt.Sprintf("我%s中文。", hanzi),
			Pinyin:  fmt.Sprintf("Wǒ %s Zhōngwén.", pinyin),
			English: fmt.Sprintf("I %s Chinese.", strings.TrimPrefix(firstNonEmpty(base, "..."), "to ")),
		}
	case strings.Contains(pos, "adjective"):
		return SampleSentence{
			Chinese: fmt.Sprintf("他很%s。", hanzi),
			Pinyin:  fmt.Sprintf("Tā hěn %s.", pinyin),
			English: fmt.Sprintf("He is very %s.", firstNonEmpty(base, meaning)),
		}
	case strings.Contains(pos, "number"):
		return SampleSentence{
			Chinese: fmt.Sprintf("我最喜欢的数字是%s。", hanzi),
			Pinyin:  fmt.Sprintf("Wǒ zuì xǐhuān de shùzì shì %s.", pinyin),
			English: fmt.Sprintf("My favorite number is %s.", firstNonEmpty(base, meaning)),
		}
	case strings.Contains(pos, "question"):
		return SampleSentence{
			Chinese: fmt.Sprintf("这是%s吗？", hanzi),
			Pinyin:  fmt.Sprintf("Zhè shì %s ma?", pinyin),
			English: fmt.Sprintf("Is this %s?", firstNonEmpty(base, meaning)),
		}
	case strings.Contains(pos, "noun") || strings.Contains(pos, "proper"):
		return SampleSentence{
			Chinese: fmt.Sprintf("这是%s。", hanzi),
			Pinyin:  fmt.Sprintf("Zhè shì %s.", pinyin),
			English: fmt.Sprintf("This is %s.", firstNonEmpty(base, meaning)),
		}
	}
	return SampleSentence{
		Chinese: fmt.Sprintf("我喜欢%s。", hanzi),
		Pinyin:  fmt.Sprintf("Wǒ xǐhuān %s.", pinyin),
		English: fmt.Sprintf("I like %s.", firstNonEmpty(base, meaning)),
	}
}

// parseGloss splits "older brother (noun)" into its base text and the
// lowercase part-of-speech annotation.
func parseGloss(meaning string) (base, pos string) {
	open := strings.LastIndex(meaning, "(")
	end := strings.LastIndex(meaning, ")")
	if open >= 0 && end > open {
		base = strings.TrimSpace(meaning[:open])
		pos = strings.ToLower(strings.TrimSpace(meaning[open+1 : end]))
		return base, pos
	}
	return strings.TrimSpace(meaning), ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func titleFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// #endregion generate
