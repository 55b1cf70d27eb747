// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import "fmt"

// Tag is the 16-bit identifier of a directory entry.
// GPS tags share the numeric space with the TIFF and Exif tags.
type Tag uint16

// TagUnknown is the sentinel used for tags that cannot be created.
const TagUnknown Tag = 0xFFFF

// Tags in the primary image directory (IFD0).
const (
	TagSubfileType                 Tag = 0x00FE
	TagOldSubfileType              Tag = 0x00FF
	TagImageWidth                  Tag = 0x0100
	TagImageLength                 Tag = 0x0101
	TagBitsPerSample               Tag = 0x0102
	TagCompression                 Tag = 0x0103
	TagPhotometricInterpretation   Tag = 0x0106
	TagThreshholding               Tag = 0x0107
	TagCellWidth                   Tag = 0x0108
	TagCellLength                  Tag = 0x0109
	TagFillOrder                   Tag = 0x010A
	TagDocumentName                Tag = 0x010D
	TagImageDescription            Tag = 0x010E
	TagMake                        Tag = 0x010F
	TagModel                       Tag = 0x0110
	TagStripOffsets                Tag = 0x0111
	TagOrientation                 Tag = 0x0112
	TagSamplesPerPixel             Tag = 0x0115
	TagRowsPerStrip                Tag = 0x0116
	TagStripByteCounts             Tag = 0x0117
	TagMinSampleValue              Tag = 0x0118
	TagMaxSampleValue              Tag = 0x0119
	TagXResolution                 Tag = 0x011A
	TagYResolution                 Tag = 0x011B
	TagPlanarConfiguration         Tag = 0x011C
	TagPageName                    Tag = 0x011D
	TagXPosition                   Tag = 0x011E
	TagYPosition                   Tag = 0x011F
	TagFreeOffsets                 Tag = 0x0120
	TagFreeByteCounts              Tag = 0x0121
	TagGrayResponseUnit            Tag = 0x0122
	TagGrayResponseCurve           Tag = 0x0123
	TagT4Options                   Tag = 0x0124
	TagT6Options                   Tag = 0x0125
	TagResolutionUnit              Tag = 0x0128
	TagPageNumber                  Tag = 0x0129
	TagTransferFunction            Tag = 0x012D
	TagSoftware                    Tag = 0x0131
	TagDateTime                    Tag = 0x0132
	TagArtist                      Tag = 0x013B
	TagHostComputer                Tag = 0x013C
	TagPredictor                   Tag = 0x013D
	TagWhitePoint                  Tag = 0x013E
	TagPrimaryChromaticities       Tag = 0x013F
	TagColorMap                    Tag = 0x0140
	TagHalftoneHints               Tag = 0x0141
	TagTileWidth                   Tag = 0x0142
	TagTileLength                  Tag = 0x0143
	TagTileOffsets                 Tag = 0x0144
	TagTileByteCounts              Tag = 0x0145
	TagBadFaxLines                 Tag = 0x0146
	TagCleanFaxData                Tag = 0x0147
	TagConsecutiveBadFaxLines      Tag = 0x0148
	TagInkSet                      Tag = 0x014C
	TagInkNames                    Tag = 0x014D
	TagNumberOfInks                Tag = 0x014E
	TagDotRange                    Tag = 0x0150
	TagTargetPrinter               Tag = 0x0151
	TagExtraSamples                Tag = 0x0152
	TagSampleFormat                Tag = 0x0153
	TagSMinSampleValue             Tag = 0x0154
	TagSMaxSampleValue             Tag = 0x0155
	TagTransferRange               Tag = 0x0156
	TagClipPath                    Tag = 0x0157
	TagXClipPathUnits              Tag = 0x0158
	TagYClipPathUnits              Tag = 0x0159
	TagIndexed                     Tag = 0x015A
	TagJPEGTables                  Tag = 0x015B
	TagOPIProxy                    Tag = 0x015F
	TagProfileType                 Tag = 0x0191
	TagFaxProfile                  Tag = 0x0192
	TagCodingMethods               Tag = 0x0193
	TagVersionYear                 Tag = 0x0194
	TagModeNumber                  Tag = 0x0195
	TagDecode                      Tag = 0x01B1
	TagDefaultImageColor           Tag = 0x01B2
	TagJPEGProc                    Tag = 0x0200
	TagJPEGInterchangeFormat       Tag = 0x0201
	TagJPEGInterchangeFormatLength Tag = 0x0202
	TagJPEGRestartInterval         Tag = 0x0203
	TagJPEGLosslessPredictors      Tag = 0x0205
	TagJPEGPointTransforms         Tag = 0x0206
	TagJPEGQTables                 Tag = 0x0207
	TagJPEGDCTables                Tag = 0x0208
	TagJPEGACTables                Tag = 0x0209
	TagYCbCrCoefficients           Tag = 0x0211
	TagYCbCrSubsampling            Tag = 0x0212
	TagYCbCrPositioning            Tag = 0x0213
	TagReferenceBlackWhite         Tag = 0x0214
	TagStripRowCounts              Tag = 0x022F
	TagXMP                         Tag = 0x02BC
	TagRating                      Tag = 0x4746
	TagRatingPercent               Tag = 0x4749
	TagImageID                     Tag = 0x800D
	TagCopyright                   Tag = 0x8298
	TagImageLayer                  Tag = 0x87AC
	TagXPTitle                     Tag = 0x9C9B
	TagXPComment                   Tag = 0x9C9C
	TagXPAuthor                    Tag = 0x9C9D
	TagXPKeywords                  Tag = 0x9C9E
	TagXPSubject                   Tag = 0x9C9F
)

// Pointer tags. The reader follows them and the writer computes them; they are never
// visible in a decoded collection.
const (
	TagSubIFDOffset Tag = 0x8769
	TagGPSIFDOffset Tag = 0x8825
)

// Tags in the Exif sub-directory.
const (
	TagExposureTime              Tag = 0x829A
	TagFNumber                   Tag = 0x829D
	TagExposureProgram           Tag = 0x8822
	TagSpectralSensitivity       Tag = 0x8824
	TagISOSpeedRatings           Tag = 0x8827
	TagOECF                      Tag = 0x8828
	TagSensitivityType           Tag = 0x8830
	TagStandardOutputSensitivity Tag = 0x8831
	TagRecommendedExposureIndex  Tag = 0x8832
	TagISOSpeed                  Tag = 0x8833
	TagExifVersion               Tag = 0x9000
	TagDateTimeOriginal          Tag = 0x9003
	TagDateTimeDigitized         Tag = 0x9004
	TagOffsetTime                Tag = 0x9010
	TagOffsetTimeOriginal        Tag = 0x9011
	TagOffsetTimeDigitized       Tag = 0x9012
	TagComponentsConfiguration   Tag = 0x9101
	TagCompressedBitsPerPixel    Tag = 0x9102
	TagShutterSpeedValue         Tag = 0x9201
	TagApertureValue             Tag = 0x9202
	TagBrightnessValue           Tag = 0x9203
	TagExposureBiasValue         Tag = 0x9204
	TagMaxApertureValue          Tag = 0x9205
	TagSubjectDistance           Tag = 0x9206
	TagMeteringMode              Tag = 0x9207
	TagLightSource               Tag = 0x9208
	TagFlash                     Tag = 0x9209
	TagFocalLength               Tag = 0x920A
	TagSubjectArea               Tag = 0x9214
	TagMakerNote                 Tag = 0x927C
	TagUserComment               Tag = 0x9286
	TagSubsecTime                Tag = 0x9290
	TagSubsecTimeOriginal        Tag = 0x9291
	TagSubsecTimeDigitized       Tag = 0x9292
	TagFlashpixVersion           Tag = 0xA000
	TagColorSpace                Tag = 0xA001
	TagPixelXDimension           Tag = 0xA002
	TagPixelYDimension           Tag = 0xA003
	TagRelatedSoundFile          Tag = 0xA004
	TagFlashEnergy               Tag = 0xA20B
	TagSpatialFrequencyResponse  Tag = 0xA20C
	TagFocalPlaneXResolution     Tag = 0xA20E
	TagFocalPlaneYResolution     Tag = 0xA20F
	TagFocalPlaneResolutionUnit  Tag = 0xA210
	TagSubjectLocation           Tag = 0xA214
	TagExposureIndex             Tag = 0xA215
	TagSensingMethod             Tag = 0xA217
	TagFileSource                Tag = 0xA300
	TagSceneType                 Tag = 0xA301
	TagCFAPattern                Tag = 0xA302
	TagCustomRendered            Tag = 0xA401
	TagExposureMode              Tag = 0xA402
	TagWhiteBalance              Tag = 0xA403
	TagDigitalZoomRatio          Tag = 0xA404
	TagFocalLengthIn35mmFilm     Tag = 0xA405
	TagSceneCaptureType          Tag = 0xA406
	TagGainControl               Tag = 0xA407
	TagContrast                  Tag = 0xA408
	TagSaturation                Tag = 0xA409
	TagSharpness                 Tag = 0xA40A
	TagDeviceSettingDescription  Tag = 0xA40B
	TagSubjectDistanceRange      Tag = 0xA40C
	TagImageUniqueID             Tag = 0xA420
	TagCameraOwnerName           Tag = 0xA430
	TagBodySerialNumber          Tag = 0xA431
	TagLensSpecification         Tag = 0xA432
	TagLensMake                  Tag = 0xA433
	TagLensModel                 Tag = 0xA434
	TagLensSerialNumber          Tag = 0xA435
	TagGamma                     Tag = 0xA500
)

// Tags in the GPS sub-directory.
const (
	TagGPSVersionID         Tag = 0x0000
	TagGPSLatitudeRef       Tag = 0x0001
	TagGPSLatitude          Tag = 0x0002
	TagGPSLongitudeRef      Tag = 0x0003
	TagGPSLongitude         Tag = 0x0004
	TagGPSAltitudeRef       Tag = 0x0005
	TagGPSAltitude          Tag = 0x0006
	TagGPSTimestamp         Tag = 0x0007
	TagGPSSatellites        Tag = 0x0008
	TagGPSStatus            Tag = 0x0009
	TagGPSMeasureMode       Tag = 0x000A
	TagGPSDOP               Tag = 0x000B
	TagGPSSpeedRef          Tag = 0x000C
	TagGPSSpeed             Tag = 0x000D
	TagGPSTrackRef          Tag = 0x000E
	TagGPSTrack             Tag = 0x000F
	TagGPSImgDirectionRef   Tag = 0x0010
	TagGPSImgDirection      Tag = 0x0011
	TagGPSMapDatum          Tag = 0x0012
	TagGPSDestLatitudeRef   Tag = 0x0013
	TagGPSDestLatitude      Tag = 0x0014
	TagGPSDestLongitudeRef  Tag = 0x0015
	TagGPSDestLongitude     Tag = 0x0016
	TagGPSDestBearingRef    Tag = 0x0017
	TagGPSDestBearing       Tag = 0x0018
	TagGPSDestDistanceRef   Tag = 0x0019
	TagGPSDestDistance      Tag = 0x001A
	TagGPSProcessingMethod  Tag = 0x001B
	TagGPSAreaInformation   Tag = 0x001C
	TagGPSDateStamp         Tag = 0x001D
	TagGPSDifferential      Tag = 0x001E
	TagGPSHPositioningError Tag = 0x001F
)

type tagDef struct {
	name     string
	dataType DataType
	isArray  bool
}

// tagDefs holds the canonical data type and array-ness of each known tag.
var tagDefs = map[Tag]tagDef{
	TagSubfileType:                 {"SubfileType", DataTypeLong, false},
	TagOldSubfileType:              {"OldSubfileType", DataTypeShort, false},
	TagImageWidth:                  {"ImageWidth", DataTypeLong, false},
	TagImageLength:                 {"ImageLength", DataTypeLong, false},
	TagBitsPerSample:               {"BitsPerSample", DataTypeShort, true},
	TagCompression:                 {"Compression", DataTypeShort, false},
	TagPhotometricInterpretation:   {"PhotometricInterpretation", DataTypeShort, false},
	TagThreshholding:               {"Threshholding", DataTypeShort, false},
	TagCellWidth:                   {"CellWidth", DataTypeShort, false},
	TagCellLength:                  {"CellLength", DataTypeShort, false},
	TagFillOrder:                   {"FillOrder", DataTypeShort, false},
	TagDocumentName:                {"DocumentName", DataTypeASCII, false},
	TagImageDescription:            {"ImageDescription", DataTypeASCII, false},
	TagMake:                        {"Make", DataTypeASCII, false},
	TagModel:                       {"Model", DataTypeASCII, false},
	TagStripOffsets:                {"StripOffsets", DataTypeLong, true},
	TagOrientation:                 {"Orientation", DataTypeShort, false},
	TagSamplesPerPixel:             {"SamplesPerPixel", DataTypeShort, false},
	TagRowsPerStrip:                {"RowsPerStrip", DataTypeLong, false},
	TagStripByteCounts:             {"StripByteCounts", DataTypeLong, true},
	TagMinSampleValue:              {"MinSampleValue", DataTypeShort, true},
	TagMaxSampleValue:              {"MaxSampleValue", DataTypeShort, true},
	TagXResolution:                 {"XResolution", DataTypeRational, false},
	TagYResolution:                 {"YResolution", DataTypeRational, false},
	TagPlanarConfiguration:         {"PlanarConfiguration", DataTypeShort, false},
	TagPageName:                    {"PageName", DataTypeASCII, false},
	TagXPosition:                   {"XPosition", DataTypeRational, false},
	TagYPosition:                   {"YPosition", DataTypeRational, false},
	TagFreeOffsets:                 {"FreeOffsets", DataTypeLong, true},
	TagFreeByteCounts:              {"FreeByteCounts", DataTypeLong, true},
	TagGrayResponseUnit:            {"GrayResponseUnit", DataTypeShort, false},
	TagGrayResponseCurve:           {"GrayResponseCurve", DataTypeShort, true},
	TagT4Options:                   {"T4Options", DataTypeLong, false},
	TagT6Options:                   {"T6Options", DataTypeLong, false},
	TagResolutionUnit:              {"ResolutionUnit", DataTypeShort, false},
	TagPageNumber:                  {"PageNumber", DataTypeShort, true},
	TagTransferFunction:            {"TransferFunction", DataTypeShort, true},
	TagSoftware:                    {"Software", DataTypeASCII, false},
	TagDateTime:                    {"DateTime", DataTypeASCII, false},
	TagArtist:                      {"Artist", DataTypeASCII, false},
	TagHostComputer:                {"HostComputer", DataTypeASCII, false},
	TagPredictor:                   {"Predictor", DataTypeShort, false},
	TagWhitePoint:                  {"WhitePoint", DataTypeRational, true},
	TagPrimaryChromaticities:       {"PrimaryChromaticities", DataTypeRational, true},
	TagColorMap:                    {"ColorMap", DataTypeShort, true},
	TagHalftoneHints:               {"HalftoneHints", DataTypeShort, true},
	TagTileWidth:                   {"TileWidth", DataTypeLong, false},
	TagTileLength:                  {"TileLength", DataTypeLong, false},
	TagTileOffsets:                 {"TileOffsets", DataTypeLong, true},
	TagTileByteCounts:              {"TileByteCounts", DataTypeLong, true},
	TagBadFaxLines:                 {"BadFaxLines", DataTypeLong, false},
	TagCleanFaxData:                {"CleanFaxData", DataTypeShort, false},
	TagConsecutiveBadFaxLines:      {"ConsecutiveBadFaxLines", DataTypeLong, false},
	TagInkSet:                      {"InkSet", DataTypeShort, false},
	TagInkNames:                    {"InkNames", DataTypeASCII, false},
	TagNumberOfInks:                {"NumberOfInks", DataTypeShort, false},
	TagDotRange:                    {"DotRange", DataTypeByte, true},
	TagTargetPrinter:               {"TargetPrinter", DataTypeASCII, false},
	TagExtraSamples:                {"ExtraSamples", DataTypeShort, true},
	TagSampleFormat:                {"SampleFormat", DataTypeShort, true},
	TagSMinSampleValue:             {"SMinSampleValue", DataTypeShort, true},
	TagSMaxSampleValue:             {"SMaxSampleValue", DataTypeShort, true},
	TagTransferRange:               {"TransferRange", DataTypeShort, true},
	TagClipPath:                    {"ClipPath", DataTypeByte, true},
	TagXClipPathUnits:              {"XClipPathUnits", DataTypeLong, false},
	TagYClipPathUnits:              {"YClipPathUnits", DataTypeLong, false},
	TagIndexed:                     {"Indexed", DataTypeShort, false},
	TagJPEGTables:                  {"JPEGTables", DataTypeUndefined, true},
	TagOPIProxy:                    {"OPIProxy", DataTypeShort, false},
	TagProfileType:                 {"ProfileType", DataTypeLong, false},
	TagFaxProfile:                  {"FaxProfile", DataTypeByte, false},
	TagCodingMethods:               {"CodingMethods", DataTypeLong, false},
	TagVersionYear:                 {"VersionYear", DataTypeByte, true},
	TagModeNumber:                  {"ModeNumber", DataTypeByte, false},
	TagDecode:                      {"Decode", DataTypeSignedRational, true},
	TagDefaultImageColor:           {"DefaultImageColor", DataTypeShort, true},
	TagJPEGProc:                    {"JPEGProc", DataTypeShort, false},
	TagJPEGInterchangeFormat:       {"JPEGInterchangeFormat", DataTypeLong, false},
	TagJPEGInterchangeFormatLength: {"JPEGInterchangeFormatLength", DataTypeLong, false},
	TagJPEGRestartInterval:         {"JPEGRestartInterval", DataTypeShort, false},
	TagJPEGLosslessPredictors:      {"JPEGLosslessPredictors", DataTypeShort, true},
	TagJPEGPointTransforms:         {"JPEGPointTransforms", DataTypeShort, true},
	TagJPEGQTables:                 {"JPEGQTables", DataTypeLong, true},
	TagJPEGDCTables:                {"JPEGDCTables", DataTypeLong, true},
	TagJPEGACTables:                {"JPEGACTables", DataTypeLong, true},
	TagYCbCrCoefficients:           {"YCbCrCoefficients", DataTypeRational, true},
	TagYCbCrSubsampling:            {"YCbCrSubsampling", DataTypeShort, true},
	TagYCbCrPositioning:            {"YCbCrPositioning", DataTypeShort, false},
	TagReferenceBlackWhite:         {"ReferenceBlackWhite", DataTypeRational, true},
	TagStripRowCounts:              {"StripRowCounts", DataTypeLong, true},
	TagXMP:                         {"XMP", DataTypeByte, true},
	TagRating:                      {"Rating", DataTypeShort, false},
	TagRatingPercent:               {"RatingPercent", DataTypeShort, false},
	TagImageID:                     {"ImageID", DataTypeASCII, false},
	TagCopyright:                   {"Copyright", DataTypeASCII, false},
	TagImageLayer:                  {"ImageLayer", DataTypeLong, true},
	TagXPTitle:                     {"XPTitle", DataTypeByte, true},
	TagXPComment:                   {"XPComment", DataTypeByte, true},
	TagXPAuthor:                    {"XPAuthor", DataTypeByte, true},
	TagXPKeywords:                  {"XPKeywords", DataTypeByte, true},
	TagXPSubject:                   {"XPSubject", DataTypeByte, true},
	TagSubIFDOffset:                {"SubIFDOffset", DataTypeLong, false},
	TagGPSIFDOffset:                {"GPSIFDOffset", DataTypeLong, false},
	TagExposureTime:                {"ExposureTime", DataTypeRational, false},
	TagFNumber:                     {"FNumber", DataTypeRational, false},
	TagExposureProgram:             {"ExposureProgram", DataTypeShort, false},
	TagSpectralSensitivity:         {"SpectralSensitivity", DataTypeASCII, false},
	TagISOSpeedRatings:             {"ISOSpeedRatings", DataTypeShort, true},
	TagOECF:                        {"OECF", DataTypeUndefined, true},
	TagSensitivityType:             {"SensitivityType", DataTypeShort, false},
	TagStandardOutputSensitivity:   {"StandardOutputSensitivity", DataTypeLong, false},
	TagRecommendedExposureIndex:    {"RecommendedExposureIndex", DataTypeLong, false},
	TagISOSpeed:                    {"ISOSpeed", DataTypeLong, false},
	TagExifVersion:                 {"ExifVersion", DataTypeUndefined, true},
	TagDateTimeOriginal:            {"DateTimeOriginal", DataTypeASCII, false},
	TagDateTimeDigitized:           {"DateTimeDigitized", DataTypeASCII, false},
	TagOffsetTime:                  {"OffsetTime", DataTypeASCII, false},
	TagOffsetTimeOriginal:          {"OffsetTimeOriginal", DataTypeASCII, false},
	TagOffsetTimeDigitized:         {"OffsetTimeDigitized", DataTypeASCII, false},
	TagComponentsConfiguration:     {"ComponentsConfiguration", DataTypeUndefined, true},
	TagCompressedBitsPerPixel:      {"CompressedBitsPerPixel", DataTypeRational, false},
	TagShutterSpeedValue:           {"ShutterSpeedValue", DataTypeSignedRational, false},
	TagApertureValue:               {"ApertureValue", DataTypeRational, false},
	TagBrightnessValue:             {"BrightnessValue", DataTypeSignedRational, false},
	TagExposureBiasValue:           {"ExposureBiasValue", DataTypeSignedRational, false},
	TagMaxApertureValue:            {"MaxApertureValue", DataTypeRational, false},
	TagSubjectDistance:             {"SubjectDistance", DataTypeRational, false},
	TagMeteringMode:                {"MeteringMode", DataTypeShort, false},
	TagLightSource:                 {"LightSource", DataTypeShort, false},
	TagFlash:                       {"Flash", DataTypeShort, false},
	TagFocalLength:                 {"FocalLength", DataTypeRational, false},
	TagSubjectArea:                 {"SubjectArea", DataTypeShort, true},
	TagMakerNote:                   {"MakerNote", DataTypeUndefined, true},
	TagUserComment:                 {"UserComment", DataTypeUndefined, true},
	TagSubsecTime:                  {"SubsecTime", DataTypeASCII, false},
	TagSubsecTimeOriginal:          {"SubsecTimeOriginal", DataTypeASCII, false},
	TagSubsecTimeDigitized:         {"SubsecTimeDigitized", DataTypeASCII, false},
	TagFlashpixVersion:             {"FlashpixVersion", DataTypeUndefined, true},
	TagColorSpace:                  {"ColorSpace", DataTypeShort, false},
	TagPixelXDimension:             {"PixelXDimension", DataTypeLong, false},
	TagPixelYDimension:             {"PixelYDimension", DataTypeLong, false},
	TagRelatedSoundFile:            {"RelatedSoundFile", DataTypeASCII, false},
	TagFlashEnergy:                 {"FlashEnergy", DataTypeRational, false},
	TagSpatialFrequencyResponse:    {"SpatialFrequencyResponse", DataTypeUndefined, true},
	TagFocalPlaneXResolution:       {"FocalPlaneXResolution", DataTypeRational, false},
	TagFocalPlaneYResolution:       {"FocalPlaneYResolution", DataTypeRational, false},
	TagFocalPlaneResolutionUnit:    {"FocalPlaneResolutionUnit", DataTypeShort, false},
	TagSubjectLocation:             {"SubjectLocation", DataTypeShort, true},
	TagExposureIndex:               {"ExposureIndex", DataTypeRational, false},
	TagSensingMethod:               {"SensingMethod", DataTypeShort, false},
	TagFileSource:                  {"FileSource", DataTypeUndefined, false},
	TagSceneType:                   {"SceneType", DataTypeUndefined, false},
	TagCFAPattern:                  {"CFAPattern", DataTypeUndefined, true},
	TagCustomRendered:              {"CustomRendered", DataTypeShort, false},
	TagExposureMode:                {"ExposureMode", DataTypeShort, false},
	TagWhiteBalance:                {"WhiteBalance", DataTypeShort, false},
	TagDigitalZoomRatio:            {"DigitalZoomRatio", DataTypeRational, false},
	TagFocalLengthIn35mmFilm:       {"FocalLengthIn35mmFilm", DataTypeShort, false},
	TagSceneCaptureType:            {"SceneCaptureType", DataTypeShort, false},
	TagGainControl:                 {"GainControl", DataTypeShort, false},
	TagContrast:                    {"Contrast", DataTypeShort, false},
	TagSaturation:                  {"Saturation", DataTypeShort, false},
	TagSharpness:                   {"Sharpness", DataTypeShort, false},
	TagDeviceSettingDescription:    {"DeviceSettingDescription", DataTypeUndefined, true},
	TagSubjectDistanceRange:        {"SubjectDistanceRange", DataTypeShort, false},
	TagImageUniqueID:               {"ImageUniqueID", DataTypeASCII, false},
	TagCameraOwnerName:             {"CameraOwnerName", DataTypeASCII, false},
	TagBodySerialNumber:            {"BodySerialNumber", DataTypeASCII, false},
	TagLensSpecification:           {"LensSpecification", DataTypeRational, true},
	TagLensMake:                    {"LensMake", DataTypeASCII, false},
	TagLensModel:                   {"LensModel", DataTypeASCII, false},
	TagLensSerialNumber:            {"LensSerialNumber", DataTypeASCII, false},
	TagGamma:                       {"Gamma", DataTypeRational, false},
	TagGPSVersionID:                {"GPSVersionID", DataTypeByte, true},
	TagGPSLatitudeRef:              {"GPSLatitudeRef", DataTypeASCII, false},
	TagGPSLatitude:                 {"GPSLatitude", DataTypeRational, true},
	TagGPSLongitudeRef:             {"GPSLongitudeRef", DataTypeASCII, false},
	TagGPSLongitude:                {"GPSLongitude", DataTypeRational, true},
	TagGPSAltitudeRef:              {"GPSAltitudeRef", DataTypeByte, false},
	TagGPSAltitude:                 {"GPSAltitude", DataTypeRational, false},
	TagGPSTimestamp:                {"GPSTimestamp", DataTypeRational, true},
	TagGPSSatellites:               {"GPSSatellites", DataTypeASCII, false},
	TagGPSStatus:                   {"GPSStatus", DataTypeASCII, false},
	TagGPSMeasureMode:              {"GPSMeasureMode", DataTypeASCII, false},
	TagGPSDOP:                      {"GPSDOP", DataTypeRational, false},
	TagGPSSpeedRef:                 {"GPSSpeedRef", DataTypeASCII, false},
	TagGPSSpeed:                    {"GPSSpeed", DataTypeRational, false},
	TagGPSTrackRef:                 {"GPSTrackRef", DataTypeASCII, false},
	TagGPSTrack:                    {"GPSTrack", DataTypeRational, false},
	TagGPSImgDirectionRef:          {"GPSImgDirectionRef", DataTypeASCII, false},
	TagGPSImgDirection:             {"GPSImgDirection", DataTypeRational, false},
	TagGPSMapDatum:                 {"GPSMapDatum", DataTypeASCII, false},
	TagGPSDestLatitudeRef:          {"GPSDestLatitudeRef", DataTypeASCII, false},
	TagGPSDestLatitude:             {"GPSDestLatitude", DataTypeRational, true},
	TagGPSDestLongitudeRef:         {"GPSDestLongitudeRef", DataTypeASCII, false},
	TagGPSDestLongitude:            {"GPSDestLongitude", DataTypeRational, true},
	TagGPSDestBearingRef:           {"GPSDestBearingRef", DataTypeASCII, false},
	TagGPSDestBearing:              {"GPSDestBearing", DataTypeRational, false},
	TagGPSDestDistanceRef:          {"GPSDestDistanceRef", DataTypeASCII, false},
	TagGPSDestDistance:             {"GPSDestDistance", DataTypeRational, false},
	TagGPSProcessingMethod:         {"GPSProcessingMethod", DataTypeUndefined, true},
	TagGPSAreaInformation:          {"GPSAreaInformation", DataTypeUndefined, true},
	TagGPSDateStamp:                {"GPSDateStamp", DataTypeASCII, false},
	TagGPSDifferential:             {"GPSDifferential", DataTypeShort, false},
	TagGPSHPositioningError:        {"GPSHPositioningError", DataTypeRational, false},
}

// String returns the name of the tag, or its hex id if unknown.
func (t Tag) String() string {
	if def, ok := tagDefs[t]; ok {
		return def.name
	}
	if t == TagUnknown {
		return "Unknown"
	}
	return fmt.Sprintf("%s0x%04x", UnknownPrefix, uint16(t))
}

// IsKnown reports whether t is in the tag registry.
func (t Tag) IsKnown() bool {
	_, ok := tagDefs[t]
	return ok
}

// DataType returns the canonical data type of t, DataTypeUnknown if t is not known.
func (t Tag) DataType() DataType {
	return tagDefs[t].dataType
}

// IsArray reports whether values of t are canonically arrays.
// ASCII tags are never arrays.
func (t Tag) IsArray() bool {
	return tagDefs[t].isArray
}

// TagByName looks up a known tag by its name, e.g. "ImageWidth".
func TagByName(name string) (Tag, bool) {
	t, ok := tagsByName[name]
	return t, ok
}

var tagsByName = map[string]Tag{}

func init() {
	for t, def := range tagDefs {
		tagsByName[def.name] = t
	}
}
