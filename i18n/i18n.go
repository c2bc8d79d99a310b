package i18n

import (
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
	"go.uber.org/zap"
)

var (
	mu   sync.RWMutex
	lang = "en"
)

var supported = []string{"pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Stop": {
		"pt": "Parar",
		"es": "Parar",
		"ru": "Стоп",
	},
	"Best": {
		"pt": "Recorde",
		"es": "Récord",
		"ru": "Рекорд",
	},
}

// Init selects the UI language. A non-empty forced value wins; otherwise the
// first system locale is used, falling back to English.
func Init(forced string, logger *zap.SugaredLogger) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	if forced = strings.TrimSpace(forced); forced != "" {
		logger.Infow("language forced by configuration", "lang", forced)
		setLang(forced)
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		logger.Infow("no user locale detected, defaulting to english", "error", err)
		setLang("en")
		return
	}

	logger.Debugw("detected user locale", "locale", userLocales[0])
	setLang(Match(userLocales[0]))
	logger.Infow("language set", "lang", GetLang())
}

// Match maps a locale such as "pt_BR" to a supported language code.
func Match(loc string) string {
	for _, l := range supported {
		if strings.HasPrefix(loc, l) {
			return l
		}
	}
	return "en"
}

func setLang(l string) {
	mu.Lock()
	lang = l
	mu.Unlock()
}

// T translates key into the current language, or returns key unchanged.
func T(key string) string {
	l := GetLang()
	if translated, ok := translations[key][l]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
