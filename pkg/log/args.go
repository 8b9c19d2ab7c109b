package log

import "fmt"

// toMsg and toKV split the variadic args of Info/Warn/...:
// the first string is the message, an even tail is treated as key/value pairs,
// anything else is appended to the message (e.g. logger.Error(ctx, "failed: ", err)).
func toMsg(arg []any) string {
	if len(arg) == 0 {
		return ""
	}
	msg, ok := arg[0].(string)
	if !ok {
		return fmt.Sprint(arg...)
	}
	rest := arg[1:]
	if isKV(rest) {
		return msg
	}
	return fmt.Sprint(arg...)
}

func toKV(arg []any) []any {
	if len(arg) < 3 {
		return nil
	}
	if _, ok := arg[0].(string); !ok {
		return nil
	}
	rest := arg[1:]
	if !isKV(rest) {
		return nil
	}
	return rest
}

func isKV(rest []any) bool {
	if len(rest) == 0 || len(rest)%2 != 0 {
		return false
	}
	for i := 0; i < len(rest); i += 2 {
		if _, ok := rest[i].(string); !ok {
			return false
		}
	}
	return true
}
