// Package hclscan extracts a coarse structural view of Terraform HCL
// with line-oriented regular expressions. It is not an HCL parser: it
// recognizes top-level blocks with up to one nested brace level and the
// simple attribute forms diagrams care about, and silently skips
// everything else. Go's regexp engine is linear-time, so arbitrary
// input cannot blow up the scan.
package hclscan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// RawBlock is one extracted block: the quoted labels that followed the
// keyword and the raw text between its braces.
type RawBlock struct {
	Labels []string
	Body   string
}

// blockKeywords are precompiled at init; ExtractBlocks compiles on the
// fly for anything else.
var blockKeywords = []string{
	"terraform", "provider", "resource", "data", "variable", "module", "output", "locals",
}

var blockPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(blockKeywords))
	for _, kw := range blockKeywords {
		m[kw] = compileBlockPattern(kw)
	}
	return m
}()

// compileBlockPattern builds the block matcher for a keyword. The body
// group tolerates one level of nested braces (tags, lifecycle and the
// like); deeper nesting truncates the body early, which is an accepted
// limit of the scanning approach.
func compileBlockPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`(?m)^[ \t]*%s(?:[ \t]+"([^"]+)")?(?:[ \t]+"([^"]+)")?[ \t]*\{((?:[^{}]|\{[^{}]*\})*)\}`,
		regexp.QuoteMeta(keyword),
	))
}

func blockPattern(keyword string) *regexp.Regexp {
	if re, ok := blockPatterns[keyword]; ok {
		return re
	}
	return compileBlockPattern(keyword)
}

// ExtractBlocks returns every top-level block opened by the given
// keyword, in source order.
func ExtractBlocks(src, keyword string) []RawBlock {
	var blocks []RawBlock
	for _, m := range blockPattern(keyword).FindAllStringSubmatch(src, -1) {
		b := RawBlock{Body: m[3]}
		for _, label := range m[1:3] {
			if label != "" {
				b.Labels = append(b.Labels, label)
			}
		}
		blocks = append(blocks, b)
	}
	return blocks
}

var resourcePairRe = regexp.MustCompile(`resource\s+"[^"]+"\s+"[^"]+"\s*\{`)

// IsHCL reports whether raw text looks like native Terraform HCL. The
// check runs on unparsed text and is deliberately loose: block-opening
// fragments for the core keywords, or a full resource header.
func IsHCL(text string) bool {
	if strings.Contains(text, "terraform {") ||
		strings.Contains(text, `provider "`) ||
		strings.Contains(text, `resource "`) ||
		strings.Contains(text, `data "`) {
		return true
	}
	return resourcePairRe.MatchString(text)
}

var (
	attrQuotedRe = regexp.MustCompile(`(?m)^[ \t]*([A-Za-z_][A-Za-z0-9_-]*)[ \t]*=[ \t]*"([^"]*)"[ \t]*$`)
	attrBareRe   = regexp.MustCompile(`(?m)^[ \t]*([A-Za-z_][A-Za-z0-9_-]*)[ \t]*=[ \t]*([A-Za-z_][A-Za-z0-9_.\[\]*-]*)[ \t]*$`)
	tagsBlockRe  = regexp.MustCompile(`(?m)\btags[ \t]*=[ \t]*\{([^}]*)\}`)
	quotedPairRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)[ \t]*=[ \t]*"([^"]*)"`)
	dependsOnRe  = regexp.MustCompile(`(?m)depends_on[ \t]*=[ \t]*\[([^\]]*)\]`)
)

// Scan lifts the blocks a diagram renders out of HCL source. Blocks the
// scanner does not understand are ignored rather than reported; syntax
// feedback is the validator's job.
func Scan(src string) *domain.TerraformConfig {
	cfg := &domain.TerraformConfig{}

	for _, b := range ExtractBlocks(src, "provider") {
		if len(b.Labels) >= 1 {
			cfg.Providers = append(cfg.Providers, domain.TerraformProvider{Name: b.Labels[0]})
		}
	}

	for _, b := range ExtractBlocks(src, "resource") {
		if len(b.Labels) < 2 {
			continue
		}
		cfg.Resources = append(cfg.Resources, domain.TerraformResource{
			Type:       b.Labels[0],
			Name:       b.Labels[1],
			Attributes: scanQuotedAttrs(b.Body),
			Refs:       scanBareRefs(b.Body),
			Tags:       scanTags(b.Body),
			DependsOn:  scanDependsOn(b.Body),
		})
	}

	for _, b := range ExtractBlocks(src, "data") {
		if len(b.Labels) < 2 {
			continue
		}
		cfg.DataSources = append(cfg.DataSources, domain.TerraformDataSource{
			Type: b.Labels[0],
			Name: b.Labels[1],
		})
	}

	for _, b := range ExtractBlocks(src, "variable") {
		if len(b.Labels) >= 1 {
			cfg.Variables = append(cfg.Variables, domain.TerraformVariable{
				Name: b.Labels[0],
				Body: b.Body,
			})
		}
	}

	return cfg
}

// scanQuotedAttrs collects top-level `name = "value"` assignments. The
// value keeps interpolation syntax intact for reference extraction
// further down the pipeline.
func scanQuotedAttrs(body string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrQuotedRe.FindAllStringSubmatch(body, -1) {
		attrs[m[1]] = m[2]
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

// scanBareRefs collects unquoted expression assignments that look like
// references, i.e. contain at least one dot (aws_vpc.main.id,
// var.region). Bare booleans and plain identifiers are dropped.
func scanBareRefs(body string) map[string]string {
	refs := make(map[string]string)
	for _, m := range attrBareRe.FindAllStringSubmatch(body, -1) {
		if strings.Contains(m[2], ".") {
			refs[m[1]] = m[2]
		}
	}
	if len(refs) == 0 {
		return nil
	}
	return refs
}

func scanTags(body string) map[string]string {
	m := tagsBlockRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	tags := make(map[string]string)
	for _, pair := range quotedPairRe.FindAllStringSubmatch(m[1], -1) {
		tags[pair[1]] = pair[2]
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func scanDependsOn(body string) []string {
	m := dependsOnRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	var deps []string
	for _, entry := range strings.Split(m[1], ",") {
		entry = strings.Trim(strings.TrimSpace(entry), `"`)
		if entry != "" {
			deps = append(deps, entry)
		}
	}
	return deps
}
