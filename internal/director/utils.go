package director

import (
	"fmt"
	"path/filepath"
	"time"
)

// GeneratePlanPath creates a timestamped plan filename inside dir.
func GeneratePlanPath(dir, template string, now time.Time) string {
	timestamp := now.Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.yaml", template, timestamp))
}
