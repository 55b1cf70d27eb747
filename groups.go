// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

// Parts is a bitmask selecting the directories the writer emits.
type Parts uint32

const (
	// IfdTags selects the primary image directory (IFD0).
	IfdTags Parts = 1 << iota
	// ExifTags selects the Exif sub-directory.
	ExifTags
	// GPSTags selects the GPS sub-directory.
	GPSTags

	// AllParts selects all directories.
	AllParts = IfdTags | ExifTags | GPSTags
)

// Has returns true if the given part is set.
func (p Parts) Has(part Parts) bool {
	return p&part != 0
}

// Remove removes the given part.
func (p Parts) Remove(part Parts) Parts {
	p &= ^part
	return p
}

// IsZero returns true if no part is set.
func (p Parts) IsZero() bool {
	return p == 0
}

// The membership lists below are part of the wire format: a tag is written to the
// directory whose list contains it, and nowhere else.
var (
	ifdTags = []Tag{
		TagSubfileType,
		TagOldSubfileType,
		TagImageWidth,
		TagImageLength,
		TagBitsPerSample,
		TagCompression,
		TagPhotometricInterpretation,
		TagThreshholding,
		TagCellWidth,
		TagCellLength,
		TagFillOrder,
		TagDocumentName,
		TagImageDescription,
		TagMake,
		TagModel,
		TagStripOffsets,
		TagOrientation,
		TagSamplesPerPixel,
		TagRowsPerStrip,
		TagStripByteCounts,
		TagMinSampleValue,
		TagMaxSampleValue,
		TagXResolution,
		TagYResolution,
		TagPlanarConfiguration,
		TagPageName,
		TagXPosition,
		TagYPosition,
		TagFreeOffsets,
		TagFreeByteCounts,
		TagGrayResponseUnit,
		TagGrayResponseCurve,
		TagT4Options,
		TagT6Options,
		TagResolutionUnit,
		TagPageNumber,
		TagTransferFunction,
		TagSoftware,
		TagDateTime,
		TagArtist,
		TagHostComputer,
		TagPredictor,
		TagWhitePoint,
		TagPrimaryChromaticities,
		TagColorMap,
		TagHalftoneHints,
		TagTileWidth,
		TagTileLength,
		TagTileOffsets,
		TagTileByteCounts,
		TagBadFaxLines,
		TagCleanFaxData,
		TagConsecutiveBadFaxLines,
		TagInkSet,
		TagInkNames,
		TagNumberOfInks,
		TagDotRange,
		TagTargetPrinter,
		TagExtraSamples,
		TagSampleFormat,
		TagSMinSampleValue,
		TagSMaxSampleValue,
		TagTransferRange,
		TagClipPath,
		TagXClipPathUnits,
		TagYClipPathUnits,
		TagIndexed,
		TagJPEGTables,
		TagOPIProxy,
		TagProfileType,
		TagFaxProfile,
		TagCodingMethods,
		TagVersionYear,
		TagModeNumber,
		TagDecode,
		TagDefaultImageColor,
		TagJPEGProc,
		TagJPEGInterchangeFormat,
		TagJPEGInterchangeFormatLength,
		TagJPEGRestartInterval,
		TagJPEGLosslessPredictors,
		TagJPEGPointTransforms,
		TagJPEGQTables,
		TagJPEGDCTables,
		TagJPEGACTables,
		TagYCbCrCoefficients,
		TagYCbCrSubsampling,
		TagYCbCrPositioning,
		TagReferenceBlackWhite,
		TagStripRowCounts,
		TagXMP,
		TagRating,
		TagRatingPercent,
		TagImageID,
		TagCopyright,
		TagImageLayer,
		TagXPTitle,
		TagXPComment,
		TagXPAuthor,
		TagXPKeywords,
		TagXPSubject,
	}

	exifTags = []Tag{
		TagExposureTime,
		TagFNumber,
		TagExposureProgram,
		TagSpectralSensitivity,
		TagISOSpeedRatings,
		TagOECF,
		TagSensitivityType,
		TagStandardOutputSensitivity,
		TagRecommendedExposureIndex,
		TagISOSpeed,
		TagExifVersion,
		TagDateTimeOriginal,
		TagDateTimeDigitized,
		TagOffsetTime,
		TagOffsetTimeOriginal,
		TagOffsetTimeDigitized,
		TagComponentsConfiguration,
		TagCompressedBitsPerPixel,
		TagShutterSpeedValue,
		TagApertureValue,
		TagBrightnessValue,
		TagExposureBiasValue,
		TagMaxApertureValue,
		TagSubjectDistance,
		TagMeteringMode,
		TagLightSource,
		TagFlash,
		TagFocalLength,
		TagSubjectArea,
		TagMakerNote,
		TagUserComment,
		TagSubsecTime,
		TagSubsecTimeOriginal,
		TagSubsecTimeDigitized,
		TagFlashpixVersion,
		TagColorSpace,
		TagPixelXDimension,
		TagPixelYDimension,
		TagRelatedSoundFile,
		TagFlashEnergy,
		TagSpatialFrequencyResponse,
		TagFocalPlaneXResolution,
		TagFocalPlaneYResolution,
		TagFocalPlaneResolutionUnit,
		TagSubjectLocation,
		TagExposureIndex,
		TagSensingMethod,
		TagFileSource,
		TagSceneType,
		TagCFAPattern,
		TagCustomRendered,
		TagExposureMode,
		TagWhiteBalance,
		TagDigitalZoomRatio,
		TagFocalLengthIn35mmFilm,
		TagSceneCaptureType,
		TagGainControl,
		TagContrast,
		TagSaturation,
		TagSharpness,
		TagDeviceSettingDescription,
		TagSubjectDistanceRange,
		TagImageUniqueID,
		TagCameraOwnerName,
		TagBodySerialNumber,
		TagLensSpecification,
		TagLensMake,
		TagLensModel,
		TagLensSerialNumber,
		TagGamma,
	}

	gpsTags = []Tag{
		TagGPSVersionID,
		TagGPSLatitudeRef,
		TagGPSLatitude,
		TagGPSLongitudeRef,
		TagGPSLongitude,
		TagGPSAltitudeRef,
		TagGPSAltitude,
		TagGPSTimestamp,
		TagGPSSatellites,
		TagGPSStatus,
		TagGPSMeasureMode,
		TagGPSDOP,
		TagGPSSpeedRef,
		TagGPSSpeed,
		TagGPSTrackRef,
		TagGPSTrack,
		TagGPSImgDirectionRef,
		TagGPSImgDirection,
		TagGPSMapDatum,
		TagGPSDestLatitudeRef,
		TagGPSDestLatitude,
		TagGPSDestLongitudeRef,
		TagGPSDestLongitude,
		TagGPSDestBearingRef,
		TagGPSDestBearing,
		TagGPSDestDistanceRef,
		TagGPSDestDistance,
		TagGPSProcessingMethod,
		TagGPSAreaInformation,
		TagGPSDateStamp,
		TagGPSDifferential,
		TagGPSHPositioningError,
	}
)

// tagGroups maps each writable tag to the part it belongs to.
var tagGroups = map[Tag]Parts{}

func init() {
	for _, l := range []struct {
		part Parts
		tags []Tag
	}{
		{IfdTags, ifdTags},
		{ExifTags, exifTags},
		{GPSTags, gpsTags},
	} {
		for _, t := range l.tags {
			tagGroups[t] = l.part
		}
	}
}

// Part returns the directory t is written to, 0 if t is never written.
func (t Tag) Part() Parts {
	return tagGroups[t]
}
