package toolchain

import (
	"context"

	"anvil/internal/diag"
	"anvil/internal/macros"
	"anvil/internal/platform"
)

// Prober classifies a candidate binary and negotiates dialect flags. All
// subprocess work goes through the shared Extractor, so repeated probes of
// the same (path, flags) pair within a run hit the memo.
type Prober struct {
	Extractor *macros.Extractor
}

// compilerInfo is what one bare probe tells us about a binary.
type compilerInfo struct {
	table    macros.Table
	family   Family
	version  Version
	language macros.Language
	langOK   bool
}

func (p *Prober) describe(ctx context.Context, path string, lang macros.Language) (compilerInfo, error) {
	table, err := p.Extractor.Extract(ctx, path, lang, nil)
	if err != nil {
		return compilerInfo{}, err
	}
	info := compilerInfo{table: table, family: Classify(table)}
	info.language, info.langOK = detectLanguage(table)
	if v, ok := versionOf(info.family, table); ok {
		info.version = v
	}
	return info, nil
}

// Probe resolves path as a compiler for the given language and role
// triple: classify the family, enforce the version policy, and find the
// minimal flags reaching the required dialect.
func (p *Prober) Probe(ctx context.Context, path string, lang macros.Language, triple platform.Triple) (*CompilerResult, error) {
	info, err := p.describe(ctx, path, lang)
	if err != nil {
		return nil, err
	}

	if err := checkSupport(info.family, info.version, triple); err != nil {
		return nil, err
	}
	if !info.langOK || info.language != lang {
		return nil, diag.Errorf(diag.NotACompiler, "`%s` is not a %s compiler.", path, lang)
	}

	result := &CompilerResult{
		Path:     path,
		Family:   info.family,
		Version:  info.version,
		Language: lang,
	}

	want := requiredDialect(lang)
	if !want.satisfied(info.table) {
		accepted, err := p.negotiateDialect(ctx, path, lang, info.family, want)
		if err != nil {
			return nil, err
		}
		result.Flags = accepted
	}

	// Our C++ builds on Darwin always use LLVM's libc++, whatever the
	// platform default.
	if info.family == FamilyClang && lang == macros.LangCXX && triple.IsApple() {
		result.Flags = append([]string{"-stdlib=libc++"}, result.Flags...)
	}
	return result, nil
}

// negotiateDialect re-probes with each candidate flag set, most modern
// first, and accepts the first one that raises the standard-version symbol
// to the requirement without changing what the binary is.
func (p *Prober) negotiateDialect(ctx context.Context, path string, lang macros.Language, family Family, want dialect) ([]string, error) {
	for _, flags := range dialectFlags(family, lang) {
		table, err := p.Extractor.Extract(ctx, path, lang, flags)
		if err != nil {
			// A rejected flag is just a failed candidate.
			if diag.IsCode(err, diag.ProbeFailed) {
				continue
			}
			return nil, err
		}
		if want.satisfied(table) && Classify(table) == family {
			return flags, nil
		}
	}
	return nil, diag.Errorf(diag.NoDialectSupport,
		"`%s` does not support the %s standard", path, want.name)
}
