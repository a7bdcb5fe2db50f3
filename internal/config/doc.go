// Package config manages the bytecodec user configuration file.
//
// The file is YAML and holds conversion preferences (charset, hex
// separator, float32 decimal places, output format) and saved access
// point aliases so BSSIDs can be referred to by name.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/bytecodec/config.yaml or $HOME/.config/bytecodec/config.yaml
//   - macOS: $HOME/.config/bytecodec/config.yaml
//   - Windows: %LOCALAPPDATA%\bytecodec\config.yaml
//
// BYTECODEC_CONFIG overrides the location.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//
//	if _, err := registry.SetAccessPoint("office", "18fe349aa3c4", "2nd floor"); err != nil {
//	    return err
//	}
//
//	if err := registry.Save(); err != nil {
//	    return err
//	}
//
// Saves are atomic: the registry is written to a temporary file and
// renamed into place.
package config
