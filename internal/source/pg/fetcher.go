// Package pg fetches announcement rows from the hosted Postgres registries.
package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/internal/source"
)

// Upstream row counts exceed any single default page size, so fetchers page
// with LIMIT/OFFSET until a short page signals exhaustion.
const DefaultPageSize = 1000

// BizInfoFetcher reads the bizinfo_complete registry.
type BizInfoFetcher struct {
	db       *pgxpool.Pool
	pageSize int
}

func NewBizInfoFetcher(pool *ConnectionPool, pageSize int) *BizInfoFetcher {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &BizInfoFetcher{db: pool.conn, pageSize: pageSize}
}

func (f *BizInfoFetcher) Source() domain.Source {
	return domain.SourceBizInfo
}

const bizInfoSQL = `
	SELECT
		id::text,
		COALESCE(pblanc_nm, ''), COALESCE(bsns_title, ''),
		COALESCE(organ_nm, ''), COALESCE(spnsr_organ_nm, ''),
		COALESCE(loc_nm, ''), COALESCE(loc_rstr, ''),
		COALESCE(sprt_trgt, ''), COALESCE(aply_trgt_ctnt, ''),
		COALESCE(tot_sprt_amount, ''), COALESCE(sprt_scale, ''),
		COALESCE(bsns_sumry, ''),
		COALESCE(pblanc_cn, ''), COALESCE(sprt_cn, ''),
		COALESCE(bsns_purpose, ''),
		COALESCE(reqst_begin_ymd, ''), COALESCE(reqst_end_ymd, ''),
		COALESCE(dtl_url, ''), COALESCE(aply_url, ''),
		COALESCE(organ_tel, ''), COALESCE(email, ''), COALESCE(website, ''),
		COALESCE(attachment_urls, '{}')
	FROM bizinfo_complete
	ORDER BY id
	LIMIT $1 OFFSET $2
`

func (f *BizInfoFetcher) FetchAll(ctx context.Context) ([]source.Row, error) {
	return fetchPaged(ctx, f.db, f.pageSize, f.Source(), bizInfoSQL, scanBizInfoRow)
}

// KStartupFetcher reads the kstartup_complete registry.
type KStartupFetcher struct {
	db       *pgxpool.Pool
	pageSize int
}

func NewKStartupFetcher(pool *ConnectionPool, pageSize int) *KStartupFetcher {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &KStartupFetcher{db: pool.conn, pageSize: pageSize}
}

func (f *KStartupFetcher) Source() domain.Source {
	return domain.SourceKStartup
}

const kstartupSQL = `
	SELECT
		id::text,
		COALESCE(biz_pbanc_nm, ''), COALESCE(bsns_title, ''),
		COALESCE(pbanc_ntrp_nm, ''), COALESCE(spnsr_organ_nm, ''),
		COALESCE(supt_regin, ''), COALESCE(rcpt_area_nm, ''),
		COALESCE(aply_trgt_ctnt, ''), COALESCE(aply_trgt_cn, ''),
		COALESCE(sprt_scale, ''), COALESCE(support_type, ''),
		COALESCE(bsns_sumry, ''),
		COALESCE(pbanc_ctnt, ''),
		COALESCE(bsns_purpose, ''),
		COALESCE(pbanc_rcpt_bgng_dt, ''), COALESCE(pbanc_rcpt_end_dt, ''),
		COALESCE(detl_pg_url, ''), COALESCE(biz_gdnc_url, ''), COALESCE(biz_aply_url, ''),
		COALESCE(phone, ''), COALESCE(email, ''), COALESCE(website, ''),
		COALESCE(attachment_urls, '{}')
	FROM kstartup_complete
	ORDER BY id
	LIMIT $1 OFFSET $2
`

func (f *KStartupFetcher) FetchAll(ctx context.Context) ([]source.Row, error) {
	return fetchPaged(ctx, f.db, f.pageSize, f.Source(), kstartupSQL, scanKStartupRow)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func fetchPaged(
	ctx context.Context,
	db *pgxpool.Pool,
	pageSize int,
	src domain.Source,
	query string,
	scan func(rowScanner) (source.Row, error),
) ([]source.Row, error) {
	var all []source.Row

	for offset := 0; ; offset += pageSize {
		rows, err := db.Query(ctx, query, pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s page at offset %d: %w", src, offset, err)
		}

		pageCount := 0
		for rows.Next() {
			row, err := scan(rows)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan %s row: %w", src, err)
			}
			all = append(all, row)
			pageCount++
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("error iterating %s rows: %w", src, err)
		}
		rows.Close()

		if pageCount < pageSize {
			break
		}
	}

	slog.Info("Fetched registry", "source", src, "rows", len(all))
	return all, nil
}

func scanBizInfoRow(rs rowScanner) (source.Row, error) {
	var (
		id                              string
		pblancNm, bsnsTitle             string
		organNm, spnsrOrganNm           string
		locNm, locRstr                  string
		sprtTrgt, aplyTrgtCtnt          string
		totSprtAmount, sprtScale        string
		bsnsSumry, pblancCn, sprtCn     string
		bsnsPurpose                     string
		beginYmd, endYmd                string
		dtlURL, aplyURL                 string
		organTel, email, website        string
		attachments                     []string
	)

	err := rs.Scan(
		&id,
		&pblancNm, &bsnsTitle,
		&organNm, &spnsrOrganNm,
		&locNm, &locRstr,
		&sprtTrgt, &aplyTrgtCtnt,
		&totSprtAmount, &sprtScale,
		&bsnsSumry,
		&pblancCn, &sprtCn,
		&bsnsPurpose,
		&beginYmd, &endYmd,
		&dtlURL, &aplyURL,
		&organTel, &email, &website,
		&attachments,
	)
	if err != nil {
		return source.Row{}, err
	}

	return source.Row{
		Source:       domain.SourceBizInfo,
		NativeID:     id,
		Title:        []string{pblancNm, bsnsTitle},
		Organization: []string{organNm, spnsrOrganNm},
		Region:       []string{locNm, locRstr},
		Target:       []string{sprtTrgt, aplyTrgtCtnt},
		Scale:        []string{totSprtAmount, sprtScale},
		Summary:      []string{bsnsSumry},
		Description:  []string{pblancCn, sprtCn},
		Purpose:      []string{bsnsPurpose},
		StartDate:    beginYmd,
		EndDate:      endYmd,
		DetailURL:    []string{dtlURL},
		ApplyURL:     aplyURL,
		Phone:        []string{organTel},
		Email:        email,
		Website:      []string{website},
		Attachments:  attachments,
	}, nil
}

func scanKStartupRow(rs rowScanner) (source.Row, error) {
	var (
		id                           string
		bizPbancNm, bsnsTitle        string
		pbancNtrpNm, spnsrOrganNm    string
		suptRegin, rcptAreaNm        string
		aplyTrgtCtnt, aplyTrgtCn     string
		sprtScale, supportType       string
		bsnsSumry, pbancCtnt         string
		bsnsPurpose                  string
		beginDt, endDt               string
		detlPgURL, bizGdncURL        string
		bizAplyURL                   string
		phone, email, website        string
		attachments                  []string
	)

	err := rs.Scan(
		&id,
		&bizPbancNm, &bsnsTitle,
		&pbancNtrpNm, &spnsrOrganNm,
		&suptRegin, &rcptAreaNm,
		&aplyTrgtCtnt, &aplyTrgtCn,
		&sprtScale, &supportType,
		&bsnsSumry,
		&pbancCtnt,
		&bsnsPurpose,
		&beginDt, &endDt,
		&detlPgURL, &bizGdncURL, &bizAplyURL,
		&phone, &email, &website,
		&attachments,
	)
	if err != nil {
		return source.Row{}, err
	}

	return source.Row{
		Source:       domain.SourceKStartup,
		NativeID:     id,
		Title:        []string{bizPbancNm, bsnsTitle},
		Organization: []string{pbancNtrpNm, spnsrOrganNm},
		Region:       []string{suptRegin, rcptAreaNm},
		Target:       []string{aplyTrgtCtnt, aplyTrgtCn},
		Scale:        []string{sprtScale, supportType},
		Summary:      []string{bsnsSumry},
		Description:  []string{pbancCtnt},
		Purpose:      []string{bsnsPurpose},
		StartDate:    beginDt,
		EndDate:      endDt,
		DetailURL:    []string{detlPgURL, bizGdncURL},
		ApplyURL:     bizAplyURL,
		Phone:        []string{phone},
		Email:        email,
		Website:      []string{website},
		Attachments:  attachments,
	}, nil
}
