package services

import (
	"context"
	"testing"

	"vaka.link/models"
	"vaka.link/pkg/filestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganizationRequiresName(t *testing.T) {
	svc := NewOrganizationServiceWithDB(newTestDB(t))

	_, err := svc.CreateOrganization(context.Background(), OrganizationInput{Name: "   "})
	assert.ErrorIs(t, err, ErrOrgNameRequired)
}

func TestCreateAndGetOrganization(t *testing.T) {
	svc := NewOrganizationServiceWithDB(newTestDB(t))
	ctx := context.Background()

	org, err := svc.CreateOrganization(ctx, OrganizationInput{
		Name:        "  Ziraat Bankası  ",
		LogoURL:     "/uploads/ziraat.png",
		Description: "Kamu bankası",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ziraat Bankası", org.Name, "ad baştaki ve sondaki boşluklardan arındırılır")

	found, err := svc.GetOrganizationByID(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/ziraat.png", found.LogoURL)
	assert.Equal(t, "Kamu bankası", found.Description)
}

func TestGetOrganizationNotFound(t *testing.T) {
	svc := NewOrganizationServiceWithDB(newTestDB(t))

	_, err := svc.GetOrganizationByID(context.Background(), 98765)
	assert.ErrorIs(t, err, ErrOrgNotFound)
}

func TestListOrganizationsOrderedByName(t *testing.T) {
	svc := NewOrganizationServiceWithDB(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Garanti", "Akbank", "Ziraat"} {
		_, err := svc.CreateOrganization(ctx, OrganizationInput{Name: name})
		require.NoError(t, err)
	}

	orgs, err := svc.ListOrganizations(ctx)
	require.NoError(t, err)
	require.Len(t, orgs, 3)
	assert.Equal(t, "Akbank", orgs[0].Name)
	assert.Equal(t, "Garanti", orgs[1].Name)
	assert.Equal(t, "Ziraat", orgs[2].Name)
}

func TestUpdateOrganization(t *testing.T) {
	svc := NewOrganizationServiceWithDB(newTestDB(t))
	ctx := context.Background()

	org, err := svc.CreateOrganization(ctx, OrganizationInput{Name: "Eski Ad"})
	require.NoError(t, err)

	err = svc.UpdateOrganization(ctx, org.ID, OrganizationInput{
		Name:        "Yeni Ad",
		Description: "güncellendi",
	})
	require.NoError(t, err)

	found, err := svc.GetOrganizationByID(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yeni Ad", found.Name)
	assert.Equal(t, "güncellendi", found.Description)
}

func TestUpdateOrganizationNotFound(t *testing.T) {
	svc := NewOrganizationServiceWithDB(newTestDB(t))

	err := svc.UpdateOrganization(context.Background(), 54321, OrganizationInput{Name: "X"})
	assert.ErrorIs(t, err, ErrOrgNotFound)
}

func TestDeleteOrganizationNullifiesCaseReferences(t *testing.T) {
	db := newTestDB(t)
	orgSvc := NewOrganizationServiceWithDB(db)
	caseSvc := NewCaseServiceWithDB(db, filestore.New(t.TempDir()))
	ctx := context.Background()

	org, err := orgSvc.CreateOrganization(ctx, OrganizationInput{Name: "Kapanacak Banka"})
	require.NoError(t, err)

	view, err := caseSvc.CreateCase(ctx, CreateCaseInput{Name: "Vaka", OrganizationID: &org.ID},
		makeFileHeader(t, "v.pdf", []byte("x")))
	require.NoError(t, err)

	require.NoError(t, orgSvc.DeleteOrganization(ctx, org.ID))

	_, err = orgSvc.GetOrganizationByID(ctx, org.ID)
	assert.ErrorIs(t, err, ErrOrgNotFound)

	// Vaka yaşamaya devam eder, kurum referansı düşer
	orphan, err := caseSvc.GetCase(ctx, view.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.OrganizationID)
	assert.Empty(t, orphan.OrganizationName)
}

func TestDeleteOrganizationNotFound(t *testing.T) {
	svc := NewOrganizationServiceWithDB(newTestDB(t))

	err := svc.DeleteOrganization(context.Background(), 11111)
	assert.ErrorIs(t, err, ErrOrgNotFound)
}

func TestDeleteOrganizationWithoutCases(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrganizationServiceWithDB(db)
	ctx := context.Background()

	org, err := svc.CreateOrganization(ctx, OrganizationInput{Name: "Vakasız"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrganization(ctx, org.ID))

	var count int64
	require.NoError(t, db.Model(&models.Organization{}).Count(&count).Error)
	assert.Zero(t, count)
}
