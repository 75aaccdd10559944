package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetSettings() {
	settings := &domain.Settings{}
	settings.CompanyDetails.Name = "Acme Traders"
	suite.settings.On("GetSettings", mock.Anything, testUserID).Return(settings, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/settings", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Acme Traders")
}

func (suite *HandlerTestSuite) TestUpdateSection() {
	values := domain.SectionValues{"invoicePrefix": "ACME-", "dueDays": "15"}
	suite.settings.On("UpdateSection", mock.Anything, testUserID, "preferences", values).Return(&domain.Settings{}, nil).Once()

	w := suite.request(http.MethodPut, "/api/v1/settings/preferences", values)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestCreateSection_Duplicate() {
	suite.settings.On("CreateSection", mock.Anything, testUserID, "thermalPrint", mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.request(http.MethodPost, "/api/v1/settings/thermalPrint", map[string]string{"enabled": "true"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteSection() {
	suite.settings.On("DeleteSection", mock.Anything, testUserID, "thermalPrint").Return(nil).Once()

	w := suite.request(http.MethodDelete, "/api/v1/settings/thermalPrint", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestBankRoutesDoNotHitSectionRoutes() {
	banks := domain.BankAccounts{{ID: "bank-1", BankName: "HDFC", IsDefault: true}}
	suite.settings.On("AddBank", mock.Anything, testUserID, dto.AddBankRequest{
		BankName: "HDFC", AccountName: "Acme", AccountNumber: "001", IFSC: "HDFC0000001",
	}).Return(banks, nil).Once()
	suite.settings.On("SetDefaultBank", mock.Anything, testUserID, "bank-1").Return(banks, nil).Once()
	suite.settings.On("RemoveBank", mock.Anything, testUserID, "bank-9").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodPost, "/api/v1/settings/banks", map[string]string{
		"bankName": "HDFC", "accountName": "Acme", "accountNumber": "001", "ifsc": "HDFC0000001",
	})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodPut, "/api/v1/settings/banks/bank-1/default", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodDelete, "/api/v1/settings/banks/bank-9", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	suite.settings.AssertNotCalled(suite.T(), "CreateSection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAddBank_InvalidIFSC() {
	w := suite.request(http.MethodPost, "/api/v1/settings/banks", map[string]string{
		"bankName": "HDFC", "accountName": "Acme", "accountNumber": "001", "ifsc": "SHORT",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUploadSignature() {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "sig.png")
	suite.Require().NoError(err)
	_, err = part.Write(png)
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	suite.settings.On("UploadSignature", mock.Anything, testUserID, "sig.png", "image/png", png).
		Return(&domain.StoredFile{ID: "file-1", Name: "sig.png", MimeType: "image/png", URL: "https://drive.example/file-1"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/settings/signature", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := suite.send(req)

	suite.Equal(http.StatusCreated, w.Code)
	var file domain.StoredFile
	suite.decode(w, &file)
	suite.Equal("file-1", file.ID)
}

func (suite *HandlerTestSuite) TestUploadSignature_MissingFile() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/settings/signature", nil)
	w := suite.send(req)

	suite.Equal(http.StatusBadRequest, w.Code)
}
