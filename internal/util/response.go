package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

// Success wraps a payload for write endpoints that report {success, ...}.
func Success(key string, value any) Envelope {
	return Envelope{"success": true, key: value}
}

func Failure(message string) Envelope {
	return Envelope{"success": false, "error": message}
}
