package kepler3d

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadConfig layers the yaml file at path over DefaultConfig. A missing file
// is not an error. On a parse error the defaults are returned with the error
// so the caller can decide whether to carry on.
func ReadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}

func (config *Config) WriteToFile(path string) error {
	yml, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(yml); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
