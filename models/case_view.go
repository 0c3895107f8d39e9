package models

import "time"

// CaseView listeleme ve tekil sorgularda dönen okuma modelidir. Kurum adı
// join ile, etiket isimleri ilişki üzerinden doldurulur. Tags hiçbir zaman
// nil olmaz; etiketsiz vakada boş dilim döner.
type CaseView struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	FilePath         string    `json:"file_path"`
	FileType         string    `json:"file_type"`
	OrganizationID   *uint     `json:"organization_id"`
	OrganizationName string    `json:"organization_name,omitempty"`
	OrganizationLogo string    `json:"organization_logo,omitempty"`
	DownloadCount    int64     `json:"download_count"`
	CreatedAt        time.Time `json:"created_at"`
	Tags             []string  `json:"tags"`
}

// OrgStats kurum başına vaka sayısı ve toplam indirme raporudur.
// En az bir vakası olan kurumlar için üretilir.
type OrgStats struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	LogoURL        string `json:"logo_url"`
	Description    string `json:"description"`
	CaseCount      int64  `json:"case_count"`
	TotalDownloads int64  `json:"total_downloads"`
}

// NewCaseView bir Case kaydını (ilişkileri yüklenmiş haliyle) okuma modeline çevirir.
func NewCaseView(c *Case) CaseView {
	view := CaseView{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		FilePath:       c.FilePath,
		FileType:       c.FileType,
		OrganizationID: c.OrganizationID,
		DownloadCount:  c.DownloadCount,
		CreatedAt:      c.CreatedAt,
		Tags:           make([]string, 0, len(c.Tags)),
	}
	for _, tag := range c.Tags {
		view.Tags = append(view.Tags, tag.Name)
	}
	if c.Organization != nil {
		view.OrganizationName = c.Organization.Name
		view.OrganizationLogo = c.Organization.LogoURL
	}
	return view
}
