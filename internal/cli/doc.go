// Package cli builds the rosdoc command tree on cobra and resolves the app
// configuration from flags, environment variables and an optional YAML
// config file through viper.
package cli
