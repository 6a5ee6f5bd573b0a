package waiver

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gulffloat/models"
	"gulffloat/utils"

	"github.com/disintegration/imaging"
)

const signatureDir = "static/waiverpic"

// DecodeSignatureDataURL turns a "data:image/png;base64,..." string into
// raw image bytes.
func DecodeSignatureDataURL(dataURL string) ([]byte, error) {
	idx := strings.Index(dataURL, ";base64,")
	if !strings.HasPrefix(dataURL, "data:image/") || idx < 0 {
		return nil, fmt.Errorf("not an image data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("invalid base64 signature: %w", err)
	}
	return raw, nil
}

func saveSignature(dataURL, waiverID, suffix string) (string, error) {
	raw, err := DecodeSignatureDataURL(dataURL)
	if err != nil {
		return "", err
	}

	// Re-encode through imaging so corrupt payloads are rejected and what
	// lands on disk is always a clean PNG.
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to decode signature image: %w", err)
	}

	if err := os.MkdirAll(signatureDir, 0755); err != nil {
		return "", err
	}

	fileName := waiverID + "_" + suffix + ".png"
	path := filepath.Join(signatureDir, fileName)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("failed to save signature image: %w", err)
	}

	return "/static/waiverpic/" + fileName, nil
}

// storeSignatures writes each guest's signature images to disk and swaps
// the inline data URLs for served paths.
func storeSignatures(wv *models.Waiver) error {
	for i := range wv.Guests {
		g := &wv.Guests[i]
		suffix := fmt.Sprintf("g%d_%s", g.ID, utils.GenerateRandomString(8))

		path, err := saveSignature(g.ParticipantSignature, wv.ID, suffix+"_participant")
		if err != nil {
			return err
		}
		g.ParticipantSignaturePath = path
		g.ParticipantSignature = ""

		if g.GuardianSignature != "" {
			path, err := saveSignature(g.GuardianSignature, wv.ID, suffix+"_guardian")
			if err != nil {
				return err
			}
			g.GuardianSignaturePath = path
			g.GuardianSignature = ""
		}
	}
	return nil
}
