package filestore

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"vaka.link/configs/configslog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileStoreError dosya saklama katmanının tipli hatalarıdır.
type FileStoreError string

func (e FileStoreError) Error() string { return string(e) }

const (
	ErrFileTypeNotAllowed FileStoreError = "yalnızca PDF ve TEX dosyaları yüklenebilir"
	ErrFileTooLarge       FileStoreError = "dosya boyutu üst sınırı aşıyor"
	ErrFileSaveFailed     FileStoreError = "dosya kaydedilemedi"
)

// MaxFileSize yüklenebilecek en büyük dosya boyutudur (10 MiB).
const MaxFileSize = 10 * 1024 * 1024

// allowedExtensions doküman ve işaretleme formatlarıyla sınırlı izin listesidir.
var allowedExtensions = map[string]bool{
	".pdf": true,
	".tex": true,
}

// StoredFile diske yazılmış bir dosyanın kaydını temsil eder.
type StoredFile struct {
	Path string // uploads dizinine göreli yol, DB'de saklanan değer
	Ext  string // orijinal dosya adından alınan uzantı (küçük harf)
}

// Store vaka dosyalarını tek bir dizinde saklar. Her vaka kaydı tam olarak
// bir saklanmış dosyaya bağlıdır; kayıt silinince ya da dosya değişince
// eski dosya da silinir.
type Store struct {
	dir string
}

// New verilen dizin için bir Store oluşturur.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir saklama dizinini döndürür.
func (s *Store) Dir() string {
	return s.dir
}

// Save multipart başlığındaki dosyayı doğrulayıp diske yazar. Uzantı izin
// listesinde değilse ErrFileTypeNotAllowed, boyut sınırı aşılıyorsa
// ErrFileTooLarge döner; iki durumda da diskte dosya bırakılmaz. Saklanan ad
// orijinal addan bağımsız üretilir, aynı adla eşzamanlı yüklemeler çakışmaz.
func (s *Store) Save(fileHeader *multipart.FileHeader) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, ErrFileSaveFailed
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return nil, ErrFileTypeNotAllowed
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		configslog.Log.Error("Upload dizini oluşturulamadı", zap.String("dir", s.dir), zap.Error(err))
		return nil, ErrFileSaveFailed
	}

	src, err := fileHeader.Open()
	if err != nil {
		configslog.Log.Error("Yüklenen dosya açılamadı", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return nil, ErrFileSaveFailed
	}
	defer src.Close()

	storedName := uuid.New().String() + ext
	storedPath := filepath.Join(s.dir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		configslog.Log.Error("Hedef dosya oluşturulamadı", zap.String("path", storedPath), zap.Error(err))
		return nil, ErrFileSaveFailed
	}

	// Boyut beyanı (fileHeader.Size) ile yetinmeyip kopyalanan baytı da sınırla;
	// sınır aşılırsa yarım dosya diskte bırakılmaz.
	written, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1))
	closeErr := dst.Close()
	if err != nil || closeErr != nil {
		s.removeQuietly(storedPath)
		configslog.Log.Error("Dosya diske yazılamadı", zap.String("path", storedPath), zap.Error(err))
		return nil, ErrFileSaveFailed
	}
	if written > MaxFileSize {
		s.removeQuietly(storedPath)
		return nil, ErrFileTooLarge
	}

	return &StoredFile{Path: storedPath, Ext: ext}, nil
}

// Remove saklanmış dosyayı siler. Dosyanın zaten olmaması hata değildir;
// DB ile disk arasındaki sürüklenme tolere edilir.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		configslog.Log.Error("Saklanmış dosya silinemedi", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) removeQuietly(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		configslog.Log.Warn("Yarım kalan dosya temizlenemedi", zap.String("path", path), zap.Error(err))
	}
}
