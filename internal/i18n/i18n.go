// Package i18n translates the user-facing strings of StudyHub.
package i18n

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

// LangEnv forces the interface language.
const LangEnv = "STUDYHUB_LANG"

var (
	mu   sync.RWMutex
	lang = "en"
	once sync.Once
)

var translations = map[string]map[string]string{
	"Focus": {
		"pt": "Foco",
		"es": "Enfoque",
		"ru": "Фокус",
	},
	"Break": {
		"pt": "Pausa",
		"es": "Descanso",
		"ru": "Перерыв",
	},
	"Long Break": {
		"pt": "Pausa longa",
		"es": "Descanso largo",
		"ru": "Длинный перерыв",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Paused": {
		"pt": "Pausado",
		"es": "En pausa",
		"ru": "На паузе",
	},
	"Resume": {
		"pt": "Continuar",
		"es": "Reanudar",
		"ru": "Продолжить",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Skip": {
		"pt": "Pular",
		"es": "Saltar",
		"ru": "Пропустить",
	},
	"Settings": {
		"pt": "Configurações",
		"es": "Ajustes",
		"ru": "Настройки",
	},
	"Show timer": {
		"pt": "Mostrar timer",
		"es": "Mostrar temporizador",
		"ru": "Показать таймер",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
	"Completed focus sessions": {
		"pt": "Sessões de foco concluídas",
		"es": "Sesiones de enfoque completadas",
		"ru": "Завершено сессий фокуса",
	},
	"%s finished": {
		"pt": "%s terminou",
		"es": "%s terminado",
		"ru": "%s завершён",
	},
	"Up next: %s": {
		"pt": "A seguir: %s",
		"es": "A continuación: %s",
		"ru": "Далее: %s",
	},
}

// Detect selects the language once, from STUDYHUB_LANG or the system locale.
func Detect() {
	once.Do(func() {
		SetLang(detect())
	})
}

func detect() string {
	if forced := strings.TrimSpace(os.Getenv(LangEnv)); forced != "" {
		slog.Debug("language forced", "env", LangEnv, "lang", forced)
		return normalize(forced)
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		slog.Debug("could not get user locale, defaulting to english", "err", err)
		return "en"
	}
	if len(userLocales) == 0 {
		return "en"
	}
	slog.Debug("detected user locale", "locale", userLocales[0])
	return normalize(userLocales[0])
}

func normalize(value string) string {
	value = strings.ToLower(value)
	for _, supported := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(value, supported) {
			return supported
		}
	}
	return "en"
}

// SetLang overrides the active language.
func SetLang(value string) {
	mu.Lock()
	lang = normalize(value)
	mu.Unlock()
}

// Lang returns the active language code.
func Lang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// T translates key, falling back to the key itself.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}
