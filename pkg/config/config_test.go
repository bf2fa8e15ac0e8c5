package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/ipextract/pkg/api/ipextract"
)

func TestDefaultConfig(t *testing.T) {
	g := NewGomegaWithT(t)
	cfg := DefaultConfig()

	g.Expect(cfg.FilePrefixes).To(Equal([]string{"deployment-jsdl-", "ingress-jsdl-"}))
	g.Expect(cfg.FileSuffix).To(Equal(".yaml"))
	g.Expect(cfg.Output).To(Equal("unique_ip_addresses.csv"))
	g.Expect(cfg.Archives).To(BeFalse())

	cfg.FilePrefixes[0] = "changed"
	g.Expect(DefaultFilePrefixes[0]).To(Equal("deployment-jsdl-"))
}

func TestDefaultPath(t *testing.T) {
	g := NewGomegaWithT(t)
	g.Expect(DefaultPath()).To(HaveSuffix(filepath.Join("ipextract", "config.yaml")))
}

func TestInitAndLoad(t *testing.T) {
	g := NewGomegaWithT(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	g.Expect(Init(path, []string{"pt-bdo-tp-qa/b2c-eshop-qas", "pt-bdo-tp-qa/b2c-eshop-dev"})).To(Succeed())

	cfg, err := LoadConfigFile(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cfg).To(Equal(&ipextract.Config{
		Directories:  []string{"pt-bdo-tp-qa/b2c-eshop-dev", "pt-bdo-tp-qa/b2c-eshop-qas"},
		FilePrefixes: []string{"deployment-jsdl-", "ingress-jsdl-"},
		FileSuffix:   ".yaml",
		Output:       "unique_ip_addresses.csv",
	}))
}

func TestInitRefusesToOverwrite(t *testing.T) {
	g := NewGomegaWithT(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	g.Expect(os.WriteFile(path, []byte("directories: []\n"), 0600)).To(Succeed())

	err := Init(path, nil)
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("already exists"))
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	g := NewGomegaWithT(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := strings.Join([]string{
		"directories:",
		"- prod",
		"- dev",
		"- prod",
		"filePrefixes:",
		"- ingress-",
		"fileSuffix: .yml",
		"archives: true",
		"",
	}, "\n")
	g.Expect(os.WriteFile(path, []byte(content), 0600)).To(Succeed())

	cfg, err := LoadConfigFile(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cfg).To(Equal(&ipextract.Config{
		Directories:  []string{"dev", "prod"},
		FilePrefixes: []string{"ingress-"},
		FileSuffix:   ".yml",
		Output:       "unique_ip_addresses.csv",
		Archives:     true,
	}))
}

func TestLoadConfigFileErrors(t *testing.T) {
	g := NewGomegaWithT(t)
	dir := t.TempDir()

	_, err := LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	g.Expect(os.IsNotExist(err)).To(BeTrue())

	path := filepath.Join(dir, "config.yaml")
	g.Expect(os.WriteFile(path, []byte("unknownField: 1\n"), 0600)).To(Succeed())
	_, err = LoadConfigFile(path)
	g.Expect(err).To(HaveOccurred())
}

func TestInitCreatesConfigDirectory(t *testing.T) {
	g := NewGomegaWithT(t)
	path := filepath.Join(t.TempDir(), "fresh", "ipextract", "config.yaml")

	g.Expect(Init(path, []string{"qa"})).To(Succeed())

	cfg, err := LoadConfigFile(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cfg.Directories).To(Equal([]string{"qa"}))
}

func TestInitReportsStatErrors(t *testing.T) {
	g := NewGomegaWithT(t)
	file := filepath.Join(t.TempDir(), "file")
	g.Expect(os.WriteFile(file, []byte{}, 0600)).To(Succeed())

	err := Init(filepath.Join(file, "config.yaml"), nil)
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).ToNot(ContainSubstring("already exists"))
}
