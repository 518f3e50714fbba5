package automod

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/puzpuzpuz/xsync/v3"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// Block reasons, stable identifiers carried on blocked-message events. The
// regex reason embeds the matching pattern as "regex:<pattern>".
const (
	ReasonSpam      = "spam"
	ReasonProfanity = "profanity"
	ReasonLinks     = "links"
	ReasonCaps      = "caps"
)

// capsMinLength is the minimum message length before the caps rule
// applies; short shouting is tolerated.
const capsMinLength = 12

// staticProfanity is the built-in profanity list, always active when the
// guild's profanity filter is on. Guild custom words extend it.
var staticProfanity = []string{
	"fuck", "shit", "bitch", "asshole", "bastard",
	"cunt", "dickhead", "whore", "slut", "faggot", "nigger",
}

var linkRe = regexp.MustCompile(`(?i)https?://`)

// Verdict is the pipeline's decision for one message.
type Verdict struct {
	Blocked bool
	Reason  string
}

var allow = Verdict{}

func block(reason string) Verdict {
	return Verdict{Blocked: true, Reason: reason}
}

// Message is the input to one pipeline evaluation.
type Message struct {
	GuildID sharedtypes.GuildID
	Author  sharedtypes.MemberInfo
	Content string
	SentAt  time.Time
}

// Ruleset evaluates messages against the ordered rule pipeline. The rule
// order is fixed: staff exemption, spam, profanity, regex filters in
// insertion order, links, caps. The first blocking rule wins and later
// rules never run, so each verdict carries exactly one reason.
type Ruleset struct {
	spam    *WindowTracker
	isStaff func(cfg *guildtypes.GuildConfig, member sharedtypes.MemberInfo) bool

	// Compiled regex filters, keyed by pattern. Patterns are validated at
	// write time; anything here that no longer compiles is skipped.
	regexCache *xsync.MapOf[string, *regexp.Regexp]
}

// NewRuleset creates a Ruleset. isStaff decides the exemption rule.
func NewRuleset(isStaff func(cfg *guildtypes.GuildConfig, member sharedtypes.MemberInfo) bool) *Ruleset {
	return &Ruleset{
		spam:       NewWindowTracker(),
		isStaff:    isStaff,
		regexCache: xsync.NewMapOf[string, *regexp.Regexp](),
	}
}

// Evaluate runs the pipeline for one message. Evaluation has exactly one
// side effect: the message is recorded in the author's spam window. Staff
// messages short-circuit before the spam rule and are never recorded.
func (r *Ruleset) Evaluate(cfg *guildtypes.GuildConfig, msg Message) Verdict {
	if r.isStaff(cfg, msg.Author) {
		return allow
	}

	spamKey := fmt.Sprintf("%s:%s", msg.GuildID, msg.Author.UserID)
	if r.spam.RecordAndCheck(spamKey, msg.SentAt, cfg.SpamWindow(), cfg.SpamMessageCount) {
		return block(ReasonSpam)
	}

	if cfg.ProfanityFilterEnabled {
		lower := strings.ToLower(msg.Content)
		for _, word := range staticProfanity {
			if strings.Contains(lower, word) {
				return block(ReasonProfanity)
			}
		}
		for _, word := range cfg.CustomBadWords {
			if word != "" && strings.Contains(lower, strings.ToLower(word)) {
				return block(ReasonProfanity)
			}
		}
	}

	for _, pattern := range cfg.RegexFilters {
		re := r.compiled(pattern)
		if re != nil && re.MatchString(msg.Content) {
			return block("regex:" + pattern)
		}
	}

	if cfg.LinkFilterEnabled && linkRe.MatchString(msg.Content) {
		return block(ReasonLinks)
	}

	if len(msg.Content) >= capsMinLength && capsRatio(msg.Content) > cfg.CapsRatioThreshold {
		return block(ReasonCaps)
	}

	return allow
}

func (r *Ruleset) compiled(pattern string) *regexp.Regexp {
	if re, ok := r.regexCache.Load(pattern); ok {
		return re
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil
	}
	r.regexCache.Store(pattern, re)
	return re
}

// capsRatio is the share of uppercase letters among alphabetic characters.
// A message with no alphabetic characters has ratio 0.
func capsRatio(text string) float64 {
	var alpha, caps int
	for _, c := range text {
		if unicode.IsLetter(c) {
			alpha++
			if unicode.IsUpper(c) {
				caps++
			}
		}
	}
	if alpha == 0 {
		return 0
	}
	return float64(caps) / float64(alpha)
}
