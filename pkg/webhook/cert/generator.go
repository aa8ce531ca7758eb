package cert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"io"
	"math/big"
	"net"
	"time"
)

const (
	// Organization is the organization name used in generated certificates.
	Organization = "PlatformKit Operator"
	// CAValidityDuration is how long the CA certificate is valid (10 years).
	CAValidityDuration = 10 * 365 * 24 * time.Hour
	// ServerValidityDuration is how long the server certificate is valid (1 year).
	ServerValidityDuration = 365 * 24 * time.Hour
)

// Artifacts holds the PEM-encoded CA and server certificate material.
type Artifacts struct {
	CACertPEM     []byte
	CAKeyPEM      []byte
	ServerCertPEM []byte
	ServerKeyPEM  []byte
}

// GenerateSelfSignedArtifacts creates a fresh root CA and a server leaf
// certificate signed by it, both using ECDSA P-256. rng is the source of
// randomness, normally crypto/rand.Reader.
func GenerateSelfSignedArtifacts(rng io.Reader, commonName string, dnsNames []string) (*Artifacts, error) {
	ca, err := generateCA(rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CA: %w", err)
	}

	server, err := generateServerCert(rng, ca, commonName, dnsNames)
	if err != nil {
		return nil, fmt.Errorf("failed to generate server certificate: %w", err)
	}

	return &Artifacts{
		CACertPEM:     ca.certPEM,
		CAKeyPEM:      ca.keyPEM,
		ServerCertPEM: server.certPEM,
		ServerKeyPEM:  server.keyPEM,
	}, nil
}

type caArtifacts struct {
	cert    *x509.Certificate
	key     *ecdsa.PrivateKey
	certPEM []byte
	keyPEM  []byte
}

type serverArtifacts struct {
	certPEM []byte
	keyPEM  []byte
}

func generateCA(rng io.Reader) (*caArtifacts, error) {
	privKey, err := ecdsa.GenerateKey(elliptic.P256(), rng)
	if err != nil {
		return nil, err
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			CommonName:   "PlatformKit Operator CA",
			Organization: []string{Organization},
		},
		NotBefore: time.Now().Add(-1 * time.Hour),
		NotAfter:  time.Now().Add(CAValidityDuration),
		KeyUsage:  x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{
			x509.ExtKeyUsageServerAuth,
			x509.ExtKeyUsageClientAuth,
		},
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	derBytes, err := x509.CreateCertificate(rng, &template, &template, &privKey.PublicKey, privKey)
	if err != nil {
		return nil, err
	}

	caCert, err := x509.ParseCertificate(derBytes)
	if err != nil {
		return nil, err
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derBytes})

	keyBytes, err := x509.MarshalECPrivateKey(privKey)
	if err != nil {
		return nil, err
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyBytes})

	return &caArtifacts{
		cert:    caCert,
		key:     privKey,
		certPEM: certPEM,
		keyPEM:  keyPEM,
	}, nil
}

func generateServerCert(rng io.Reader, ca *caArtifacts, commonName string, dnsNames []string) (*serverArtifacts, error) {
	privKey, err := ecdsa.GenerateKey(elliptic.P256(), rng)
	if err != nil {
		return nil, err
	}

	// Serial numbers only need to be unique per CA; a large random int is
	// standard practice for ephemeral in-cluster PKI.
	serialNumberLimit := new(big.Int).Lsh(big.NewInt(1), 128)
	serialNumber, err := rand.Int(rng, serialNumberLimit)
	if err != nil {
		return nil, err
	}

	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			CommonName:   commonName,
			Organization: []string{Organization},
		},
		DNSNames:    dnsNames,
		NotBefore:   time.Now().Add(-1 * time.Hour),
		NotAfter:    time.Now().Add(ServerValidityDuration),
		KeyUsage:    x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	if ip := net.ParseIP(commonName); ip != nil {
		template.IPAddresses = append(template.IPAddresses, ip)
	}

	derBytes, err := x509.CreateCertificate(rng, &template, ca.cert, &privKey.PublicKey, ca.key)
	if err != nil {
		return nil, err
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derBytes})

	keyBytes, err := x509.MarshalECPrivateKey(privKey)
	if err != nil {
		return nil, err
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyBytes})

	return &serverArtifacts{
		certPEM: certPEM,
		keyPEM:  keyPEM,
	}, nil
}
