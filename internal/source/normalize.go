package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/pkg/stringsutil"
)

// Per-field defaults applied when every upstream candidate is empty.
const (
	defaultTitle        = "제목 없음"
	defaultOrganization = "기관명 없음"
	defaultRegion       = "전국"
	defaultTarget       = "중소기업"
	defaultScale        = "협의"
	defaultSummary      = "지원사업입니다"
	defaultDescription  = "상세 내용이 없습니다"
	defaultPurpose      = "중소기업 지원"
	defaultPhone        = "1577-8088"
)

// Upstream date columns arrive as YYYYMMDD or YYYY-MM-DD strings.
var dateLayouts = []string{"20060102", "2006-01-02"}

// Normalize turns a raw row into the unified record by walking each field's
// fallback chain and decoding HTML entities the registries leave in text.
func Normalize(row Row) domain.Announcement {
	detailURL := stringsutil.FirstNonEmpty("", row.DetailURL...)

	website := stringsutil.FirstNonEmpty("", row.Website...)
	if website == "" {
		website = detailURL
	}

	return domain.Announcement{
		ID:           fmt.Sprintf("%s_%s", row.Source.Prefix(), row.NativeID),
		Source:       row.Source,
		Title:        decodeEntities(stringsutil.FirstNonEmpty(defaultTitle, row.Title...)),
		Organization: decodeEntities(stringsutil.FirstNonEmpty(defaultOrganization, row.Organization...)),
		Region:       stringsutil.FirstNonEmpty(defaultRegion, row.Region...),
		TargetText:   decodeEntities(stringsutil.FirstNonEmpty(defaultTarget, row.Target...)),
		SupportScale: stringsutil.FirstNonEmpty(defaultScale, row.Scale...),
		Summary:      decodeEntities(stringsutil.FirstNonEmpty(defaultSummary, row.Summary...)),
		Description:  decodeEntities(stringsutil.FirstNonEmpty(defaultDescription, row.Description...)),
		Purpose:      decodeEntities(stringsutil.FirstNonEmpty(defaultPurpose, row.Purpose...)),

		StartDate: parseDate(row.StartDate),
		EndDate:   parseDate(row.EndDate),

		DetailURL:      detailURL,
		ApplyURL:       row.ApplyURL,
		Phone:          stringsutil.FirstNonEmpty(defaultPhone, row.Phone...),
		Email:          row.Email,
		Website:        website,
		AttachmentURLs: row.Attachments,
	}
}

// NormalizeAll normalizes every row of a fetch result.
func NormalizeAll(rows []Row) []domain.Announcement {
	records := make([]domain.Announcement, 0, len(rows))
	for _, row := range rows {
		records = append(records, Normalize(row))
	}
	return records
}

// parseDate accepts the registries' date layouts; anything else means the
// announcement has no fixed deadline (rolling admission).
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

var entityReplacer = strings.NewReplacer(
	"&apos;", "'",
	"&quot;", `"`,
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&#39;", "'",
	"&#x27;", "'",
)

func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
