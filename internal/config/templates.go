package config

import (
	"fmt"
	"os"
)

func Template() string {
	return fixsumTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(fixsumTemplate), 0o600)
}

const fixsumTemplate = `input = "data/FIX.4.2-ICE-12000.body"
strategy = "selective"
times_file = "times.txt"
metrics_file = ""

msg_type_tag = 35
msg_type = "8"
quantity_tag = 38
`
