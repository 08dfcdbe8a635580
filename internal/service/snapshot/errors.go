package snapshot

import "errors"

// ErrLoad возвращается, когда не удалось прочитать ограничения дня
var ErrLoad = errors.New("snapshot: failed to load day constraints")
