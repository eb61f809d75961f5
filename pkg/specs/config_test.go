/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/macaroni-os/simple-ut/pkg/specs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	v "github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newEnvConfig() *SimpleUtConfig {
	config := NewSimpleUtConfig(v.New())
	// Set env variable
	config.Viper.SetEnvPrefix(SIMPLEUT_ENV_PREFIX)
	config.Viper.BindEnv("config")
	config.Viper.SetDefault("config", "")

	config.Viper.AutomaticEnv()

	// Create EnvKey Replacer for handle complex structure
	replacer := strings.NewReplacer(".", "__")
	config.Viper.SetEnvKeyReplacer(replacer)
	return config
}

var _ = Describe("Specs Test", func() {

	Context("Config defaults", func() {

		It("Set defaults", func() {
			config := NewSimpleUtConfig(nil)
			err := config.Unmarshal()

			Expect(err).Should(BeNil())
			Expect(config.GetGeneral().HasDebug()).To(BeFalse())
			Expect(config.GetLogging().Level).To(Equal("info"))
			Expect(config.GetLogging().EnableEmoji).To(BeTrue())
			Expect(config.GetRunner().HasOutputFile()).To(BeFalse())
		})
	})

	Context("Config env", func() {

		It("Convert env1", func() {
			os.Setenv("SIMPLEUT_GENERAL__DEBUG", "true")
			os.Setenv("SIMPLEUT_RUNNER__OUTPUT", "/tmp/report.txt")
			defer os.Unsetenv("SIMPLEUT_GENERAL__DEBUG")
			defer os.Unsetenv("SIMPLEUT_RUNNER__OUTPUT")

			config := newEnvConfig()
			err := config.Unmarshal()

			Expect(err).Should(BeNil())
			Expect(config.GetGeneral().Debug).To(Equal(true))
			Expect(config.GetRunner().Output).To(Equal("/tmp/report.txt"))
		})
	})

	Context("Config file", func() {

		It("Load yaml file", func() {
			dir := GinkgoT().TempDir()
			file := filepath.Join(dir, "simple-ut.yml")
			err := os.WriteFile(file, []byte(`
logging:
  level: "warning"
  color: false
runner:
  output: "report.log"
`), 0644)
			Expect(err).Should(BeNil())

			config := NewSimpleUtConfig(nil)
			config.Viper.SetConfigType("yml")
			config.Viper.SetConfigFile(file)
			err = config.Unmarshal()

			Expect(err).Should(BeNil())
			Expect(config.GetLogging().Level).To(Equal("warning"))
			Expect(config.GetLogging().Color).To(BeFalse())
			Expect(config.GetRunner().Output).To(Equal("report.log"))
		})

		It("Dump yaml", func() {
			config := NewSimpleUtConfig(nil)
			Expect(config.Unmarshal()).Should(BeNil())

			data, err := config.Yaml()
			Expect(err).Should(BeNil())

			dump := make(map[string]interface{})
			Expect(yaml.Unmarshal(data, &dump)).Should(BeNil())
			Expect(dump).To(HaveKey("logging"))
		})
	})

})
