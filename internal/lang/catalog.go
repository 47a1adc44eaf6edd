package lang

var translations = map[string]map[Lang]string{
	"front.title": {
		English: "Middle",
		Russian: "Мидл",
	},
	"front.hint": {
		English: "t theme · l language · p privacy policy · q quit",
		Russian: "t тема · l язык · p политика конфиденциальности · q выход",
	},
	"front.policy_link": {
		English: "Privacy policy",
		Russian: "Политика конфиденциальности",
	},
	"popup.title": {
		English: "Privacy policy",
		Russian: "Политика конфиденциальности",
	},
	"popup.close": {
		English: "esc to close",
		Russian: "esc чтобы закрыть",
	},
	"theme.light": {
		English: "light",
		Russian: "светлая",
	},
	"theme.dark": {
		English: "dark",
		Russian: "тёмная",
	},
	"notfound.hint": {
		English: "page not found · q to quit",
		Russian: "страница не найдена · q для выхода",
	},
}

// T returns the string for key in l. Missing translations fall back to
// English, unknown keys come back unchanged.
func T(l Lang, key string) string {
	byLang, ok := translations[key]
	if !ok {
		return key
	}
	if s, ok := byLang[l]; ok {
		return s
	}
	if s, ok := byLang[Default]; ok {
		return s
	}
	return key
}
